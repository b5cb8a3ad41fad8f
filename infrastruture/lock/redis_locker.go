package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix     = "maze"
	defaultUnlockTimeout = 2 * time.Second
)

// RedisLocker hands out redsync mutexes named "<prefix>:<key>:lock".
type RedisLocker struct {
	locker        *redsync.Redsync
	prefix        string
	unlockTimeout time.Duration
}

// NewRedisLocker initializes a RedisLocker on the provided Redis client.
func NewRedisLocker(client *redis.Client) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker:        redsync.New(pool),
		prefix:        defaultKeyPrefix,
		unlockTimeout: defaultUnlockTimeout,
	}, nil
}

// Lock acquires the mutex for key. The returned unlock does not depend on ctx,
// so a cancelled request still releases the mutex before its expiry.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.locker.NewMutex(l.name(key))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquiring %s: %w", mutex.Name(), err)
	}

	return func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), l.unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}, nil
}

func (l *RedisLocker) name(key string) string {
	return fmt.Sprintf("%s:%s:lock", l.prefix, key)
}
