package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// TickLocker guards at-most-one evaluation per campaign per tick window.
// Acquire returns false when another runner already holds the campaign for
// this tick; callers treat that as "skip, already running", never an error.
type TickLocker interface {
	Acquire(campaignID uint, tick time.Time) (bool, error)
	Release(campaignID uint, tick time.Time) error
}

// RedisTickLock implements TickLocker with SetNX keyed on campaign ID and
// tick timestamp so overlapping workers on different hosts exclude each
// other.
type RedisTickLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTickLock(client *redis.Client, ttl time.Duration) *RedisTickLock {
	return &RedisTickLock{Client: client, TTL: ttl}
}

func tickLockKey(campaignID uint, tick time.Time) string {
	return fmt.Sprintf("tick:%d:%d", campaignID, tick.Unix())
}

func (r *RedisTickLock) Acquire(campaignID uint, tick time.Time) (bool, error) {
	return r.Client.SetNX(context.Background(), tickLockKey(campaignID, tick), 1, r.TTL).Result()
}

func (r *RedisTickLock) Release(campaignID uint, tick time.Time) error {
	return r.Client.Del(context.Background(), tickLockKey(campaignID, tick)).Err()
}

// LocalTickLock is the in-process fallback used when Redis is disabled.
// It only protects against overlap inside one process.
type LocalTickLock struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalTickLock() *LocalTickLock {
	return &LocalTickLock{held: make(map[string]struct{})}
}

func (l *LocalTickLock) Acquire(campaignID uint, tick time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := tickLockKey(campaignID, tick)
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = struct{}{}
	return true, nil
}

func (l *LocalTickLock) Release(campaignID uint, tick time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, tickLockKey(campaignID, tick))
	return nil
}
