package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RoGogDBD/items/internal/models"
)

// ErrNotFound возвращается, когда товар с указанным id не существует.
var ErrNotFound = errors.New("item not found")

// ErrCacheMiss возвращается кешем при отсутствии товара.
var ErrCacheMiss = errors.New("item not found in cache")

// CacheReader описывает чтение товаров из кеша.
type CacheReader interface {
	GetByID(id int64) (*models.Item, error)
}

// CacheWriter описывает запись и инвалидацию товаров в кеше.
type CacheWriter interface {
	Save(item *models.Item)
	Invalidate(id int64)
}

// Cache описывает операции кеша для товаров.
type Cache interface {
	CacheReader
	CacheWriter
	StartJanitor(ctx context.Context, interval time.Duration)
}

// ItemStore описывает операции хранилища для товаров.
type ItemStore interface {
	InsertItem(ctx context.Context, form *models.ItemForm) (*models.Item, error)
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	ListItems(ctx context.Context, opts ListOptions) ([]models.Item, int, error)
	UpdateItem(ctx context.Context, id int64, form *models.ItemForm) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
