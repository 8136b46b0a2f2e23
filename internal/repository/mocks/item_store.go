package mocks

import (
	"context"
	"errors"

	"github.com/RoGogDBD/items/internal/models"
	"github.com/RoGogDBD/items/internal/repository"
)

type ItemStoreMock struct {
	InsertItemFunc  func(ctx context.Context, form *models.ItemForm) (*models.Item, error)
	GetItemByIDFunc func(ctx context.Context, id int64) (*models.Item, error)
	ListItemsFunc   func(ctx context.Context, opts repository.ListOptions) ([]models.Item, int, error)
	UpdateItemFunc  func(ctx context.Context, id int64, form *models.ItemForm) (*models.Item, error)
	DeleteItemFunc  func(ctx context.Context, id int64) error
	InsertItemCalls int
	GetItemCalls    int
	ListItemsCalls  int
	UpdateItemCalls int
	DeleteItemCalls int
}

func (m *ItemStoreMock) InsertItem(ctx context.Context, form *models.ItemForm) (*models.Item, error) {
	m.InsertItemCalls++
	if m.InsertItemFunc == nil {
		return nil, errors.New("InsertItemFunc not set")
	}
	return m.InsertItemFunc(ctx, form)
}

func (m *ItemStoreMock) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	m.GetItemCalls++
	if m.GetItemByIDFunc == nil {
		return nil, errors.New("GetItemByIDFunc not set")
	}
	return m.GetItemByIDFunc(ctx, id)
}

func (m *ItemStoreMock) ListItems(ctx context.Context, opts repository.ListOptions) ([]models.Item, int, error) {
	m.ListItemsCalls++
	if m.ListItemsFunc == nil {
		return nil, 0, errors.New("ListItemsFunc not set")
	}
	return m.ListItemsFunc(ctx, opts)
}

func (m *ItemStoreMock) UpdateItem(ctx context.Context, id int64, form *models.ItemForm) (*models.Item, error) {
	m.UpdateItemCalls++
	if m.UpdateItemFunc == nil {
		return nil, errors.New("UpdateItemFunc not set")
	}
	return m.UpdateItemFunc(ctx, id, form)
}

func (m *ItemStoreMock) DeleteItem(ctx context.Context, id int64) error {
	m.DeleteItemCalls++
	if m.DeleteItemFunc == nil {
		return errors.New("DeleteItemFunc not set")
	}
	return m.DeleteItemFunc(ctx, id)
}
