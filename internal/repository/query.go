package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql строит запросы с плейсхолдерами $1..$n.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = "id, name, description, price, created_at, updated_at"

// orderColumns перечисляет поля, допустимые в параметре ordering.
var orderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// OrderColumn возвращает имя колонки для поля сортировки из запроса.
func OrderColumn(field string) (string, bool) {
	col, ok := orderColumns[field]
	return col, ok
}

// ListOptions описывает параметры выборки списка товаров.
// Search взаимоисключим с точечными фильтрами: при непустом Search
// поля *Equals игнорируются. Диапазон цены применяется независимо.
type ListOptions struct {
	Search      string
	IDEquals    *int64
	NameEquals  *string
	PriceEquals *float64

	PriceFrom *float64
	PriceTo   *float64

	OrderBy   string
	OrderDesc bool

	Limit  int
	Offset int
}

// likeEscaper экранирует метасимволы LIKE, чтобы поисковая строка
// сопоставлялась буквально, а не как шаблон.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func applyFilters(b sq.SelectBuilder, o ListOptions) sq.SelectBuilder {
	if o.Search != "" {
		pattern := "%" + likeEscaper.Replace(o.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"id::text": pattern},
			sq.ILike{"name": pattern},
			sq.ILike{"price::text": pattern},
		})
	} else {
		if o.IDEquals != nil {
			b = b.Where(sq.Eq{"id": *o.IDEquals})
		}
		if o.NameEquals != nil {
			b = b.Where(sq.Eq{"name": *o.NameEquals})
		}
		if o.PriceEquals != nil {
			b = b.Where(sq.Eq{"price": *o.PriceEquals})
		}
	}

	if o.PriceFrom != nil && o.PriceTo != nil {
		b = b.Where(sq.Expr("price BETWEEN ? AND ?", *o.PriceFrom, *o.PriceTo))
	}

	return b
}

func buildListQuery(o ListOptions) (string, []any, error) {
	b := applyFilters(psql.Select(itemColumns).From("items"), o)

	order := "id DESC"
	if o.OrderBy != "" {
		dir := "ASC"
		if o.OrderDesc {
			dir = "DESC"
		}
		order = o.OrderBy + " " + dir
	}
	b = b.OrderBy(order)

	if o.Limit > 0 {
		b = b.Limit(uint64(o.Limit))
	}
	if o.Offset > 0 {
		b = b.Offset(uint64(o.Offset))
	}

	return b.ToSql()
}

func buildCountQuery(o ListOptions) (string, []any, error) {
	return applyFilters(psql.Select("COUNT(*)").From("items"), o).ToSql()
}
