package repository

import (
	"testing"
	"time"

	"github.com/RoGogDBD/items/internal/models"
)

func TestMemStorage(t *testing.T) {
	tests := []struct {
		name        string
		ttl         time.Duration
		wait        time.Duration
		expectFound bool
	}{
		{
			name:        "save and get",
			ttl:         0,
			wait:        0,
			expectFound: true,
		},
		{
			name:        "ttl expiry",
			ttl:         time.Millisecond,
			wait:        2 * time.Millisecond,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemStorageWithConfig(10, tt.ttl)
			item := testItem(1)

			storage.Save(item)
			if tt.wait > 0 {
				time.Sleep(tt.wait)
			}

			_, err := storage.GetByID(item.ID)
			if tt.expectFound && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.expectFound && err == nil {
				t.Fatalf("expected error for expired item")
			}
		})
	}
}

func TestMemStorageInvalidate(t *testing.T) {
	storage := NewMemStorageWithConfig(10, 0)
	item := testItem(1)

	storage.Save(item)
	storage.Invalidate(item.ID)

	if _, err := storage.GetByID(item.ID); err == nil {
		t.Fatal("expected error after invalidate")
	}
	if storage.Len() != 0 {
		t.Fatalf("expected empty storage, got %d items", storage.Len())
	}
}

func TestMemStorageEviction(t *testing.T) {
	storage := NewMemStorageWithConfig(2, 0)

	storage.Save(testItem(1))
	storage.Save(testItem(2))

	// Товар 1 использован недавно, вытесниться должен товар 2
	if _, err := storage.GetByID(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	storage.Save(testItem(3))

	if _, err := storage.GetByID(1); err != nil {
		t.Fatal("expected item 1 to survive eviction")
	}
	if _, err := storage.GetByID(2); err == nil {
		t.Fatal("expected item 2 to be evicted")
	}
	if storage.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", storage.Len())
	}
}

func TestMemStorageSaveUpdatesExisting(t *testing.T) {
	storage := NewMemStorageWithConfig(10, 0)

	storage.Save(testItem(1))

	updated := testItem(1)
	newName := "Updated Item"
	updated.Name = &newName
	storage.Save(updated)

	got, err := storage.GetByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name == nil || *got.Name != newName {
		t.Fatalf("expected updated name, got %v", got.Name)
	}
	if storage.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", storage.Len())
	}
}

func testItem(id int64) *models.Item {
	name := "Test Item"
	description := "Test Description"
	price := 199.99
	now := time.Now()
	return &models.Item{
		ID:          id,
		Name:        &name,
		Description: &description,
		Price:       &price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
