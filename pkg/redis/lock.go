package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotHeld is returned when the lock is owned by another holder or expired.
var ErrLockNotHeld = errors.New("redis: lock not held by this client")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock is a single-holder distributed lock backed by SET NX
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock on the namespaced key prefix::locks::name
func NewLock(client *Client, name string, ttl time.Duration) *Lock {
	return &Lock{
		client: client,
		key:    client.Key("locks", name),
		value:  uuid.New().String(),
		ttl:    ttl,
	}
}

// TryLock makes a single attempt to acquire the lock
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	return acquired, nil
}

// Unlock releases the lock only if this holder still owns it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Key returns the namespaced lock key
func (l *Lock) Key() string {
	return l.key
}
