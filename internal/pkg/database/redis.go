package database

import (
	"context"
	"fmt"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// RedisClient represents a Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.Client
}

// HSet stores fields in a hash
func (r *RedisClient) HSet(ctx context.Context, key string, values map[string]interface{}) error {
	return r.Client.HSet(ctx, key, values).Err()
}

// HGetAll retrieves all fields of a hash
func (r *RedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.Client.HGetAll(ctx, key).Result()
}

// Expire sets a TTL on a key
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.Client.Expire(ctx, key, ttl).Err()
}

// Delete removes a key
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// ZAddLex adds a member to a sorted set with score zero so the set
// orders purely by the member string. This is what turns a sorted set
// into a lexicographic index.
func (r *RedisClient) ZAddLex(ctx context.Context, key, member string) error {
	return r.Client.ZAdd(ctx, key, &redis.Z{Score: 0, Member: member}).Err()
}

// ZRemMember removes a member from a sorted set
func (r *RedisClient) ZRemMember(ctx context.Context, key, member string) error {
	return r.Client.ZRem(ctx, key, member).Err()
}

// ZRangeByLex returns members of a zero-scored sorted set within the
// half-open interval [start, end). An empty end reads to the end of the
// key space.
func (r *RedisClient) ZRangeByLex(ctx context.Context, key, start, end string) ([]string, error) {
	max := "+"
	if end != "" {
		max = "(" + end
	}
	return r.Client.ZRangeByLex(ctx, key, &redis.ZRangeBy{
		Min: "[" + start,
		Max: max,
	}).Result()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
