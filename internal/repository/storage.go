// Package repository содержит хранилище товаров и кеш.
package repository

import (
	"container/list"
	"context"
	"log"
	"sync"
	"time"

	"github.com/RoGogDBD/items/internal/models"
)

type (
	// MemStorage — LRU-кеш товаров с опциональным TTL.
	MemStorage struct {
		items    map[int64]*list.Element
		lruList  *list.List
		mu       sync.Mutex
		maxItems int
		ttl      time.Duration
	}

	cacheEntry struct {
		key     int64
		item    *models.Item
		savedAt time.Time
	}
)

func NewMemStorage() *MemStorage {
	return NewMemStorageWithConfig(10000, 0)
}

func NewMemStorageWithConfig(maxItems int, ttl time.Duration) *MemStorage {
	if maxItems <= 0 {
		maxItems = 10000
	}
	return &MemStorage{
		items:    make(map[int64]*list.Element),
		lruList:  list.New(),
		maxItems: maxItems,
		ttl:      ttl,
	}
}

func (s *MemStorage) Save(item *models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, exists := s.items[item.ID]; exists {
		s.lruList.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.item = item
		entry.savedAt = time.Now()
		return
	}

	if s.lruList.Len() >= s.maxItems {
		s.evictOldest()
	}

	elem := s.lruList.PushFront(&cacheEntry{
		key:     item.ID,
		item:    item,
		savedAt: time.Now(),
	})
	s.items[item.ID] = elem
}

func (s *MemStorage) GetByID(id int64) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.items[id]
	if !exists {
		return nil, ErrCacheMiss
	}

	entry := elem.Value.(*cacheEntry)
	if s.expired(entry) {
		s.remove(elem)
		return nil, ErrCacheMiss
	}

	// Перемещаем в начало (использован недавно)
	s.lruList.MoveToFront(elem)
	return entry.item, nil
}

func (s *MemStorage) Invalidate(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, exists := s.items[id]; exists {
		s.remove(elem)
	}
}

// StartJanitor запускает периодическую очистку просроченных записей.
func (s *MemStorage) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.removeExpired(); removed > 0 {
					log.Printf("cache janitor removed %d expired items", removed)
				}
			}
		}
	}()
}

func (s *MemStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lruList.Len()
}

func (s *MemStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int64]*list.Element)
	s.lruList = list.New()
}

func (s *MemStorage) expired(entry *cacheEntry) bool {
	return s.ttl > 0 && time.Since(entry.savedAt) > s.ttl
}

func (s *MemStorage) evictOldest() {
	if elem := s.lruList.Back(); elem != nil {
		s.remove(elem)
	}
}

func (s *MemStorage) remove(elem *list.Element) {
	s.lruList.Remove(elem)
	delete(s.items, elem.Value.(*cacheEntry).key)
}

func (s *MemStorage) removeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for elem := s.lruList.Back(); elem != nil; {
		prev := elem.Prev()
		if s.expired(elem.Value.(*cacheEntry)) {
			s.remove(elem)
			removed++
		}
		elem = prev
	}
	return removed
}
