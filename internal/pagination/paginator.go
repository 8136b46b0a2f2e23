// Package pagination содержит постраничную разбивку списков.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize — размер страницы, когда page_size не передан.
	DefaultPageSize = 100
	// MaxPageSize — верхняя граница page_size из запроса.
	MaxPageSize = 500
)

// Params — номер страницы и её размер, разобранные из запроса.
type Params struct {
	Page     int
	PageSize int
}

// ParseParams разбирает page и page_size. Невалидные значения
// молча заменяются значениями по умолчанию.
func ParseParams(values url.Values) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}

	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Page = n
		}
	}
	if raw := values.Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			if n > MaxPageSize {
				n = MaxPageSize
			}
			p.PageSize = n
		}
	}
	return p
}

func (p Params) Limit() int {
	return p.PageSize
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page — страница результатов с навигационными ссылками.
// Next и Previous равны null на краях выборки.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// NewPage собирает страницу. Запрос за пределами последней страницы
// дает пустой results и Next == nil, это не ошибка.
func NewPage(r *http.Request, results any, count int, p Params) Page {
	page := Page{Count: count, Results: results}

	if p.Offset()+p.PageSize < count {
		page.Next = pageURL(r, p.Page+1)
	}
	if p.Page > 1 {
		page.Previous = pageURL(r, p.Page-1)
	}
	return page
}

// pageURL собирает абсолютную ссылку на страницу из входящего запроса.
// Схема берется из X-Forwarded-Proto, когда сервис стоит за прокси.
func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	u.Host = r.Host
	u.Scheme = r.Header.Get("X-Forwarded-Proto")
	if u.Scheme == "" {
		u.Scheme = "http"
		if r.TLS != nil {
			u.Scheme = "https"
		}
	}

	s := u.String()
	return &s
}
