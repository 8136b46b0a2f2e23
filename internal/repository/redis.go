package repository

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/RoGogDBD/items/internal/models"
	"github.com/go-redis/redis/v8"
)

// RedisCache — кеш товаров поверх Redis. Срок жизни записей
// контролируется самим Redis, поэтому janitor не нужен.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Save(item *models.Item) {
	data, err := json.Marshal(item)
	if err != nil {
		log.Printf("redis cache: marshal item %d: %v", item.ID, err)
		return
	}
	if err := c.client.Set(context.Background(), itemKey(item.ID), data, c.ttl).Err(); err != nil {
		log.Printf("redis cache: save item %d: %v", item.ID, err)
	}
}

func (c *RedisCache) GetByID(id int64) (*models.Item, error) {
	val, err := c.client.Get(context.Background(), itemKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisCache) Invalidate(id int64) {
	if err := c.client.Del(context.Background(), itemKey(id)).Err(); err != nil {
		log.Printf("redis cache: invalidate item %d: %v", id, err)
	}
}

// StartJanitor ничего не делает: TTL обрабатывается на стороне Redis.
func (c *RedisCache) StartJanitor(ctx context.Context, interval time.Duration) {}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func itemKey(id int64) string {
	return "items:" + strconv.FormatInt(id, 10)
}
