package service

import (
	"sync"

	"github.com/google/uuid"
)

// CartLocks serialises read-modify-write cycles on one customer's cart.
// Cart edits and checkout share the same instance.
type CartLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*cartLock
}

type cartLock struct {
	mu   sync.Mutex
	refs int
}

func NewCartLocks() *CartLocks {
	return &CartLocks{locks: make(map[uuid.UUID]*cartLock)}
}

// Lock blocks until the customer's cart is free and returns the unlock func.
func (l *CartLocks) Lock(customerID uuid.UUID) func() {

	l.mu.Lock()
	lock, ok := l.locks[customerID]
	if !ok {
		lock = &cartLock{}
		l.locks[customerID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, customerID)
		}
		l.mu.Unlock()
	}
}

func (l *CartLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
