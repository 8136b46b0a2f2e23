package handlers

import (
	"net/url"
	"testing"
)

func TestParseListOptions(t *testing.T) {
	parse := func(t *testing.T, query string) url.Values {
		t.Helper()
		values, err := url.ParseQuery(query)
		if err != nil {
			t.Fatalf("parse query: %v", err)
		}
		return values
	}

	t.Run("search suppresses exact filters", func(t *testing.T) {
		opts := parseListOptions(parse(t, "search=mac&id=5&name=macbook"))
		if opts.Search != "mac" {
			t.Fatalf("expected search %q, got %q", "mac", opts.Search)
		}
		if opts.IDEquals != nil || opts.NameEquals != nil {
			t.Fatal("expected exact filters to be ignored in search branch")
		}
	})

	t.Run("empty search still suppresses exact filters", func(t *testing.T) {
		opts := parseListOptions(parse(t, "search=&id=5"))
		if opts.Search != "" {
			t.Fatalf("expected empty search, got %q", opts.Search)
		}
		if opts.IDEquals != nil {
			t.Fatal("expected id filter to be ignored when search is present")
		}
	})

	t.Run("exact filters with coercion", func(t *testing.T) {
		opts := parseListOptions(parse(t, "id=5&name=macbook&price=199.99"))
		if opts.IDEquals == nil || *opts.IDEquals != 5 {
			t.Fatalf("expected id filter 5, got %v", opts.IDEquals)
		}
		if opts.NameEquals == nil || *opts.NameEquals != "macbook" {
			t.Fatalf("expected name filter, got %v", opts.NameEquals)
		}
		if opts.PriceEquals == nil || *opts.PriceEquals != 199.99 {
			t.Fatalf("expected price filter, got %v", opts.PriceEquals)
		}
	})

	t.Run("unparsable exact filters are dropped", func(t *testing.T) {
		opts := parseListOptions(parse(t, "id=abc&price=cheap"))
		if opts.IDEquals != nil || opts.PriceEquals != nil {
			t.Fatal("expected unparsable filters to be dropped")
		}
	})

	t.Run("price range needs both bounds", func(t *testing.T) {
		opts := parseListOptions(parse(t, "price_from=10"))
		if opts.PriceFrom != nil || opts.PriceTo != nil {
			t.Fatal("expected no range with a single bound")
		}
	})

	t.Run("price range parses both bounds", func(t *testing.T) {
		opts := parseListOptions(parse(t, "price_from=10&price_to=20"))
		if opts.PriceFrom == nil || *opts.PriceFrom != 10 {
			t.Fatalf("expected price_from 10, got %v", opts.PriceFrom)
		}
		if opts.PriceTo == nil || *opts.PriceTo != 20 {
			t.Fatalf("expected price_to 20, got %v", opts.PriceTo)
		}
	})

	t.Run("unparsable bound soft-fails the whole range", func(t *testing.T) {
		opts := parseListOptions(parse(t, "price_from=10&price_to=expensive"))
		if opts.PriceFrom != nil || opts.PriceTo != nil {
			t.Fatal("expected range filter to be skipped")
		}
	})

	t.Run("ordering with direction", func(t *testing.T) {
		opts := parseListOptions(parse(t, "ordering=-price"))
		if opts.OrderBy != "price" || !opts.OrderDesc {
			t.Fatalf("expected price DESC, got %q desc=%v", opts.OrderBy, opts.OrderDesc)
		}

		opts = parseListOptions(parse(t, "ordering=name"))
		if opts.OrderBy != "name" || opts.OrderDesc {
			t.Fatalf("expected name ASC, got %q desc=%v", opts.OrderBy, opts.OrderDesc)
		}
	})

	t.Run("unknown ordering field falls back to default", func(t *testing.T) {
		opts := parseListOptions(parse(t, "ordering=secret"))
		if opts.OrderBy != "" {
			t.Fatalf("expected empty order, got %q", opts.OrderBy)
		}
	})

	t.Run("unknown params are ignored", func(t *testing.T) {
		opts := parseListOptions(parse(t, "color=red&page=2"))
		if opts.Search != "" || opts.IDEquals != nil || opts.NameEquals != nil || opts.PriceEquals != nil {
			t.Fatal("expected no filters for unknown params")
		}
	})
}
