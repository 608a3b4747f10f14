// Package cache keeps the full people listing in Redis so repeated list
// calls (device start-up checks, pulls) skip PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const peopleListKey = "contacts:people:list"

// PeopleCache stores the people listing. Get reports ok=false on a miss.
type PeopleCache interface {
	GetPeople(ctx context.Context) (people []*models.Person, ok bool, err error)
	SetPeople(ctx context.Context, people []*models.Person) error
	Invalidate(ctx context.Context) error
}

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache implements PeopleCache with go-redis.
type RedisCache struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisClient connects to Redis and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func NewRedisCache(client redisClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetPeople(ctx context.Context) ([]*models.Person, bool, error) {
	data, err := c.client.Get(ctx, peopleListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var people []*models.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, false, err
	}
	return people, true, nil
}

func (c *RedisCache) SetPeople(ctx context.Context, people []*models.Person) error {
	data, err := json.Marshal(people)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, peopleListKey, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, peopleListKey).Err()
}

// NopCache is used when no Redis address is configured.
type NopCache struct{}

func (NopCache) GetPeople(context.Context) ([]*models.Person, bool, error) { return nil, false, nil }
func (NopCache) SetPeople(context.Context, []*models.Person) error         { return nil }
func (NopCache) Invalidate(context.Context) error                          { return nil }
