package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionsKey = "active_sessions"

// RedisRegistry stores sessions in a Redis hash so logout visibility
// propagates across instances.
type RedisRegistry struct {
	rdb *redis.Client
}

// NewRedisRegistry connects to Redis and verifies the connection.
func NewRedisRegistry(addr, password string, db int) (*RedisRegistry, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisRegistry{rdb: rdb}, nil
}

func (r *RedisRegistry) Add(ctx context.Context, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.HSet(ctx, sessionsKey, field(session.UserID), data).Err()
}

func (r *RedisRegistry) Remove(ctx context.Context, userID uint) error {
	return r.rdb.HDel(ctx, sessionsKey, field(userID)).Err()
}

func (r *RedisRegistry) Find(ctx context.Context, userID uint) (*Session, error) {
	data, err := r.rdb.HGet(ctx, sessionsKey, field(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisRegistry) All(ctx context.Context) ([]Session, error) {
	entries, err := r.rdb.HGetAll(ctx, sessionsKey).Result()
	if err != nil {
		return nil, err
	}

	all := make([]Session, 0, len(entries))
	for _, data := range entries {
		var session Session
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			continue
		}
		all = append(all, session)
	}
	return all, nil
}

// Close closes the Redis connection.
func (r *RedisRegistry) Close() error {
	return r.rdb.Close()
}

func field(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
