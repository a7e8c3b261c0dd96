package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
)

const (
	keyPrefix      = `checkout-guard:`
	releaseTimeout = 2 * time.Second
)

// deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis shares the guard between service replicas. The lock expires after ttl
// so a crashed replica cannot block a buyer forever.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("error while acquiring redis guard: %w", err)
	}

	if !ok {
		return nil, err_storage.ErrSubmissionLocked
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()

			if err := releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err(); err != nil {
				zap.L().Warn("error while releasing redis guard", zap.String("key", redisKey), zap.Error(err))
			}
		})
	}

	return release, nil
}
