package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseLockScript deletes the lock only while it still holds the caller's token.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCache struct {
	client  *redis.Client
	unitTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, unitTTL time.Duration) *RedisCache {
	return NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), unitTTL)
}

func NewRedisCacheFromClient(client *redis.Client, unitTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, unitTTL: unitTTL}
}

// GetUnit returns nil, nil on a cache miss.
func (c *RedisCache) GetUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	data, err := c.client.Get(ctx, unitKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var unit domain.Unit
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (c *RedisCache) SetUnit(ctx context.Context, unit *domain.Unit) error {
	payload, err := json.Marshal(unit)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, unitKey(unit.ID), payload, c.unitTTL).Err()
}

// AcquireQuoteLock serializes price calculations for one unit and date range.
// The returned token must be passed to ReleaseQuoteLock.
func (c *RedisCache) AcquireQuoteLock(ctx context.Context, unitID int64, start, end time.Time, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, quoteLockKey(unitID, start, end), token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// ReleaseQuoteLock is a no-op once the lock expired or passed to another holder.
func (c *RedisCache) ReleaseQuoteLock(ctx context.Context, unitID int64, start, end time.Time, token string) error {
	return releaseLockScript.Run(ctx, c.client, []string{quoteLockKey(unitID, start, end)}, token).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func unitKey(id int64) string {
	return fmt.Sprintf("cache:unit:%d", id)
}

func quoteLockKey(unitID int64, start, end time.Time) string {
	return fmt.Sprintf("lock:quote:unit:%d:%s:%s", unitID, start.Format(time.DateOnly), end.Format(time.DateOnly))
}
