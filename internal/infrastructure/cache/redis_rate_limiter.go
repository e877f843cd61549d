package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/thermit-backend/internal/domain/ports"
)

const keyPrefix = "thermit:ratelimit:"

// RedisRateLimiter implementa ports.RateLimiter com INCR + EXPIRE
type RedisRateLimiter struct {
	client redis.Cmdable
	log    ports.Logger
}

// NewRedisClient cria e verifica um cliente Redis
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedisRateLimiter cria um novo limitador baseado em Redis
func NewRedisRateLimiter(client redis.Cmdable, log ports.Logger) ports.RateLimiter {
	return &RedisRateLimiter{client: client, log: log}
}

// Allow incrementa o contador da chave e informa se ainda está dentro do limite.
// INCR e TTL vão na mesma transação; chave sem TTL sempre recebe a janela,
// inclusive quando um EXPIRE anterior falhou.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := keyPrefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		ttl = pipe.TTL(ctx, fullKey)
		return nil
	})
	if err != nil {
		r.log.Error("failed to increment rate limit", "key", key, "error", err)
		return false, err
	}

	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, fullKey, window).Err(); err != nil {
			r.log.Warn("failed to set rate limit expiry", "key", key, "error", err)
		}
	}

	return incr.Val() <= int64(limit), nil
}

// NoopRateLimiter libera todas as requisições (Redis não configurado)
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}
