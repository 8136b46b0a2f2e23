package mocks

import (
	"context"
	"time"

	"github.com/RoGogDBD/items/internal/models"
	"github.com/RoGogDBD/items/internal/repository"
)

type CacheMock struct {
	SaveFunc          func(item *models.Item)
	GetByIDFunc       func(id int64) (*models.Item, error)
	InvalidateFunc    func(id int64)
	StartJanitorFunc  func(ctx context.Context, interval time.Duration)
	SaveCalls         int
	GetByIDCalls      int
	InvalidateCalls   int
	StartJanitorCalls int
}

func (m *CacheMock) Save(item *models.Item) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		m.SaveFunc(item)
	}
}

func (m *CacheMock) GetByID(id int64) (*models.Item, error) {
	m.GetByIDCalls++
	if m.GetByIDFunc == nil {
		return nil, repository.ErrCacheMiss
	}
	return m.GetByIDFunc(id)
}

func (m *CacheMock) Invalidate(id int64) {
	m.InvalidateCalls++
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(id)
	}
}

func (m *CacheMock) StartJanitor(ctx context.Context, interval time.Duration) {
	m.StartJanitorCalls++
	if m.StartJanitorFunc != nil {
		m.StartJanitorFunc(ctx, interval)
	}
}
