package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/lovehampers/lovehampers-backend/config"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully")
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection")
		return client.Close()
	}
	return nil
}

// CheckoutGuard implements the per-device checkout in-flight lock on Redis.
// SetNX gives the lock atomically; the TTL bounds how long a crashed
// submission can hold it.
type CheckoutGuard struct {
	ttl time.Duration
}

func NewCheckoutGuard(ttl time.Duration) *CheckoutGuard {
	return &CheckoutGuard{ttl: ttl}
}

func (g *CheckoutGuard) Acquire(ctx context.Context, deviceID string) (bool, error) {
	key := fmt.Sprintf("checkout:inflight:%s", deviceID)
	ok, err := client.SetNX(ctx, key, "submitting", g.ttl).Result()
	if err != nil {
		logger.Error("Failed to acquire checkout lock", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return false, err
	}
	return ok, nil
}

func (g *CheckoutGuard) Release(ctx context.Context, deviceID string) error {
	key := fmt.Sprintf("checkout:inflight:%s", deviceID)
	if err := client.Del(ctx, key).Err(); err != nil {
		logger.Error("Failed to release checkout lock", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return err
	}
	return nil
}
