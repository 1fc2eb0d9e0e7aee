package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/srhafid/BookApi/internal/models"

	"github.com/redis/go-redis/v9"
)

// URLCache mirrors url rows into redis under url_data:{id}. It is a
// best-effort shadow of the relational store, never authoritative: a
// missing key is a miss, not an error. Entries carry no TTL.
type URLCache struct {
	rdb *redis.Client
}

func NewURLCache(rdb *redis.Client) *URLCache {
	return &URLCache{rdb: rdb}
}

func key(id uint) string {
	return fmt.Sprintf("url_data:%d", id)
}

func (c *URLCache) Store(ctx context.Context, url *models.URL) error {
	data, err := json.Marshal(url)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(url.ID), data, 0).Err()
}

// Get returns (nil, nil) on a cache miss.
func (c *URLCache) Get(ctx context.Context, id uint) (*models.URL, error) {
	val, err := c.rdb.Get(ctx, key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var url models.URL
	if err := json.Unmarshal([]byte(val), &url); err != nil {
		return nil, err
	}
	return &url, nil
}

// Delete removes the mirror entry. Deleting an absent key is not an error.
func (c *URLCache) Delete(ctx context.Context, id uint) error {
	return c.rdb.Del(ctx, key(id)).Err()
}
