package pagination

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, PageSize: DefaultPageSize}},
		{"explicit page", "page=3", Params{Page: 3, PageSize: DefaultPageSize}},
		{"explicit page size", "page=2&page_size=25", Params{Page: 2, PageSize: 25}},
		{"page size clamped to max", "page_size=9999", Params{Page: 1, PageSize: MaxPageSize}},
		{"invalid values fall back", "page=abc&page_size=-1", Params{Page: 1, PageSize: DefaultPageSize}},
		{"zero page falls back", "page=0", Params{Page: 1, PageSize: DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseParams(values))
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 100}
	assert.Equal(t, 100, p.Limit())
	assert.Equal(t, 200, p.Offset())
}

func TestNewPage(t *testing.T) {
	// Коллекция из 150 элементов при размере страницы 100
	const count = 150

	t.Run("first page has next and no previous", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/items?page=1", nil)
		p := Params{Page: 1, PageSize: 100}

		page := NewPage(r, make([]int, 100), count, p)

		assert.Equal(t, count, page.Count)
		assert.Nil(t, page.Previous)
		if assert.NotNil(t, page.Next) {
			assert.Equal(t, "http://example.com/api/v1/items?page=2", *page.Next)
		}
	})

	t.Run("last page has previous and no next", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/items?page=2", nil)
		p := Params{Page: 2, PageSize: 100}

		page := NewPage(r, make([]int, 50), count, p)

		assert.Equal(t, count, page.Count)
		assert.Nil(t, page.Next)
		if assert.NotNil(t, page.Previous) {
			assert.Equal(t, "http://example.com/api/v1/items?page=1", *page.Previous)
		}
	})

	t.Run("page beyond the last is empty, not an error", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/items?page=5", nil)
		p := Params{Page: 5, PageSize: 100}

		page := NewPage(r, []int{}, count, p)

		assert.Equal(t, count, page.Count)
		assert.Nil(t, page.Next)
		assert.Equal(t, []int{}, page.Results)
	})

	t.Run("other query params survive in links", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/items?search=mac&page=1", nil)
		p := Params{Page: 1, PageSize: 100}

		page := NewPage(r, make([]int, 100), count, p)

		if assert.NotNil(t, page.Next) {
			assert.Equal(t, "http://example.com/api/v1/items?page=2&search=mac", *page.Next)
		}
	})

	t.Run("forwarded proto sets the link scheme", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/items?page=1", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		p := Params{Page: 1, PageSize: 100}

		page := NewPage(r, make([]int, 100), count, p)

		if assert.NotNil(t, page.Next) {
			assert.Equal(t, "https://example.com/api/v1/items?page=2", *page.Next)
		}
	})
}
