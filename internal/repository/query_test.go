package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	id := int64(5)
	name := "macbook"
	price := 199.99
	from, to := 10.0, 20.0

	tests := []struct {
		name     string
		opts     ListOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "default ordering is id DESC",
			opts:    ListOptions{},
			wantSQL: "SELECT id, name, description, price, created_at, updated_at FROM items ORDER BY id DESC",
		},
		{
			name:    "search over id name price",
			opts:    ListOptions{Search: "mac"},
			wantSQL: "SELECT id, name, description, price, created_at, updated_at FROM items WHERE (id::text ILIKE $1 OR name ILIKE $2 OR price::text ILIKE $3) ORDER BY id DESC",
			wantArgs: []any{
				"%mac%", "%mac%", "%mac%",
			},
		},
		{
			name:    "search escapes LIKE metacharacters",
			opts:    ListOptions{Search: `50%_off\now`},
			wantSQL: "SELECT id, name, description, price, created_at, updated_at FROM items WHERE (id::text ILIKE $1 OR name ILIKE $2 OR price::text ILIKE $3) ORDER BY id DESC",
			wantArgs: []any{
				`%50\%\_off\\now%`, `%50\%\_off\\now%`, `%50\%\_off\\now%`,
			},
		},
		{
			name:     "search suppresses exact filters",
			opts:     ListOptions{Search: "mac", IDEquals: &id, NameEquals: &name},
			wantSQL:  "SELECT id, name, description, price, created_at, updated_at FROM items WHERE (id::text ILIKE $1 OR name ILIKE $2 OR price::text ILIKE $3) ORDER BY id DESC",
			wantArgs: []any{"%mac%", "%mac%", "%mac%"},
		},
		{
			name:     "exact filters",
			opts:     ListOptions{IDEquals: &id, NameEquals: &name, PriceEquals: &price},
			wantSQL:  "SELECT id, name, description, price, created_at, updated_at FROM items WHERE id = $1 AND name = $2 AND price = $3 ORDER BY id DESC",
			wantArgs: []any{id, name, price},
		},
		{
			name:     "price range is inclusive and independent",
			opts:     ListOptions{NameEquals: &name, PriceFrom: &from, PriceTo: &to},
			wantSQL:  "SELECT id, name, description, price, created_at, updated_at FROM items WHERE name = $1 AND price BETWEEN $2 AND $3 ORDER BY id DESC",
			wantArgs: []any{name, from, to},
		},
		{
			name:    "explicit ordering ascending",
			opts:    ListOptions{OrderBy: "price"},
			wantSQL: "SELECT id, name, description, price, created_at, updated_at FROM items ORDER BY price ASC",
		},
		{
			name:    "explicit ordering descending with pagination",
			opts:    ListOptions{OrderBy: "price", OrderDesc: true, Limit: 100, Offset: 100},
			wantSQL: "SELECT id, name, description, price, created_at, updated_at FROM items ORDER BY price DESC LIMIT 100 OFFSET 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildListQuery(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestBuildCountQuery(t *testing.T) {
	from, to := 10.0, 20.0

	sql, args, err := buildCountQuery(ListOptions{PriceFrom: &from, PriceTo: &to, Limit: 100, Offset: 100})
	require.NoError(t, err)

	// Пагинация и сортировка не должны влиять на подсчет
	assert.Equal(t, "SELECT COUNT(*) FROM items WHERE price BETWEEN $1 AND $2", sql)
	assert.Equal(t, []any{from, to}, args)
}

func TestOrderColumn(t *testing.T) {
	for _, field := range []string{"id", "name", "price", "created_at", "updated_at"} {
		col, ok := OrderColumn(field)
		assert.True(t, ok)
		assert.Equal(t, field, col)
	}

	_, ok := OrderColumn("description; DROP TABLE items")
	assert.False(t, ok)
}
