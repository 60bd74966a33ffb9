package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateKeyPrefix   = "rate:"
	defaultCacheTTL = 10 * time.Minute
)

// RateCache guarda cotações no Redis por alguns minutos.
type RateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRateCache(client *redis.Client, ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RateCache{client: client, ttl: ttl}
}

// NewRedisClient abre o client e confere a conexão com PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Get devolve ok=false em cache miss.
func (c *RateCache) Get(ctx context.Context, code string) (float64, bool, error) {
	s, err := c.client.Get(ctx, rateKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (c *RateCache) Set(ctx context.Context, code string, rate float64) error {
	return c.client.Set(ctx, rateKeyPrefix+code, strconv.FormatFloat(rate, 'f', -1, 64), c.ttl).Err()
}

func (c *RateCache) Invalidate(ctx context.Context, code string) error {
	return c.client.Del(ctx, rateKeyPrefix+code).Err()
}
