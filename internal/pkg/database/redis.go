// Package database holds the connection wrappers for external stores.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/config"
)

// RedisDB wraps a Redis client
type RedisDB struct {
	Client *redis.Client
	addr   string
	logger *zap.Logger
}

// NewRedis creates a new Redis client. No connection is made until the
// first command.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *RedisDB {
	addr := cfg.Addr()

	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        20,
		MinIdleConns:    2,
		PoolTimeout:     4 * time.Second,
	})

	return &RedisDB{Client: client, addr: addr, logger: logger}
}

// Ping checks the connection
func (db *RedisDB) Ping(ctx context.Context) error {
	if err := db.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis at %s: %w", db.addr, err)
	}
	return nil
}

// Connect pings the server with a timeout and logs the outcome
func (db *RedisDB) Connect(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		return err
	}

	db.logger.Info("connected to Redis", zap.String("addr", db.addr))
	return nil
}

// Close closes the Redis connection
func (db *RedisDB) Close() error {
	if db.Client != nil {
		return db.Client.Close()
	}
	return nil
}
