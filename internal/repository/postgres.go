package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/RoGogDBD/items/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (r *PostgresStorage) InsertItem(ctx context.Context, form *models.ItemForm) (*models.Item, error) {
	query, args, err := psql.Insert("items").
		Columns("name", "description", "price", "created_at", "updated_at").
		Values(form.Name, form.Description, form.Price, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	query, args, err := psql.Select(itemColumns).From("items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) ListItems(ctx context.Context, opts ListOptions) ([]models.Item, int, error) {
	countQuery, countArgs, err := buildCountQuery(opts)
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query, args, err := buildListQuery(opts)
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan item rows: %w", err)
	}

	return items, total, nil
}

// UpdateItem обновляет только переданные поля одним UPDATE, поэтому
// слияние и updated_at атомарны в пределах строки.
func (r *PostgresStorage) UpdateItem(ctx context.Context, id int64, form *models.ItemForm) (*models.Item, error) {
	b := psql.Update("items").Set("updated_at", sq.Expr("NOW()"))
	if form.Name != nil {
		b = b.Set("name", *form.Name)
	}
	if form.Description != nil {
		b = b.Set("description", *form.Description)
	}
	if form.Price != nil {
		b = b.Set("price", *form.Price)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + itemColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (r *PostgresStorage) DeleteItem(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*models.Item, error) {
	it := &models.Item{}
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return it, nil
}
