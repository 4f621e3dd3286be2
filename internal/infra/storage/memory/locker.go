package memory

import (
	"context"
	"sync"
)

// Locker serializes work per key (one mutex per shop). Shops never wait on each other.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocker() *Locker {
	return &Locker{locks: map[string]*sync.Mutex{}}
}

// DoLocked runs fn while holding the mutex of key
func (l *Locker) DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := l.lockFor(key)
	m.Lock()
	defer m.Unlock()

	return fn(ctx)
}

func (l *Locker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
