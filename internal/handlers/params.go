package handlers

import (
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/RoGogDBD/items/internal/repository"
)

// parseListOptions разбирает параметры фильтрации списка товаров.
// Само присутствие search отключает точечные фильтры, даже при пустом
// значении. Неизвестные параметры и неразбираемые значения молча
// игнорируются. Диапазон цены применяется только при двух разбираемых
// границах (мягкий отказ).
func parseListOptions(values url.Values) repository.ListOptions {
	var opts repository.ListOptions

	if values.Has("search") {
		opts.Search = values.Get("search")
	} else {
		if raw := values.Get("id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				opts.IDEquals = &id
			}
		}
		if raw := values.Get("name"); raw != "" {
			name := raw
			opts.NameEquals = &name
		}
		if raw := values.Get("price"); raw != "" {
			if price, err := strconv.ParseFloat(raw, 64); err == nil {
				opts.PriceEquals = &price
			}
		}
	}

	from, to := values.Get("price_from"), values.Get("price_to")
	if from != "" && to != "" {
		fromVal, fromErr := strconv.ParseFloat(from, 64)
		toVal, toErr := strconv.ParseFloat(to, 64)
		if fromErr != nil || toErr != nil {
			log.Printf("error filtering price: price_from=%q price_to=%q", from, to)
		} else {
			opts.PriceFrom = &fromVal
			opts.PriceTo = &toVal
		}
	}

	if raw := values.Get("ordering"); raw != "" {
		field := strings.TrimPrefix(raw, "-")
		if col, ok := repository.OrderColumn(field); ok {
			opts.OrderBy = col
			opts.OrderDesc = strings.HasPrefix(raw, "-")
		}
	}

	return opts
}
