package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/kanishkk18/events/utils"
)

// HostLocker serializes the conflict-check-and-insert sequence per host. Only
// the create path takes the lock; slot listing is advisory and lock-free.
type HostLocker interface {
	// Acquire blocks until the host lock is held or ctx expires. The
	// returned release function must be called exactly once.
	Acquire(ctx context.Context, hostID string) (release func(), err error)
}

// MemoryHostLocker is an in-process keyed mutex. Sufficient for a single
// instance and for tests.
type MemoryHostLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemoryHostLocker constructs an empty in-process locker.
func NewMemoryHostLocker() *MemoryHostLocker {
	return &MemoryHostLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryHostLocker) forHost(hostID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, exists := l.locks[hostID]
	if !exists {
		m = &sync.Mutex{}
		l.locks[hostID] = m
	}
	return m
}

func (l *MemoryHostLocker) Acquire(ctx context.Context, hostID string) (func(), error) {
	m := l.forHost(hostID)
	m.Lock()
	return m.Unlock, nil
}

// RedisHostLocker is a lease lock on Redis, giving cross-instance exclusion.
// The lease TTL bounds how long a crashed holder can block a host.
type RedisHostLocker struct {
	Client   *redis.Client
	LeaseTTL time.Duration
	Retry    time.Duration
}

// NewRedisHostLocker constructs a locker over the shared lock client. The
// lease must outlast the engine's remote provider timeout, otherwise a slow
// calendar call lets a second instance enter the critical section before the
// first one persists.
func NewRedisHostLocker(client *redis.Client) *RedisHostLocker {
	return &RedisHostLocker{
		Client:   client,
		LeaseTTL: 2 * time.Minute,
		Retry:    50 * time.Millisecond,
	}
}

// releaseScript deletes the lease only when still held by this owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisHostLocker) Acquire(ctx context.Context, hostID string) (func(), error) {
	key := "booking_lock:" + hostID
	token := uuid.New().String()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.LeaseTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.Retry):
		}
	}

	release := func() {
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(relCtx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			utils.GetLogger().Warn("failed to release booking lock: " + err.Error())
		}
	}
	return release, nil
}
