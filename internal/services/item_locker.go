package services

import (
	"sync"
	"time"
)

// ItemLocker serializes reservation work per inventory item. Each item
// gets a one-slot channel; holding the slot means holding the lock.
// Acquire waits at most the configured duration before giving up so a
// slow booking cannot wedge every other request for the same item.
type ItemLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewItemLocker creates a new ItemLocker
func NewItemLocker() *ItemLocker {
	return &ItemLocker{
		locks: make(map[string]chan struct{}),
	}
}

// lockFor returns the lock channel for an item, creating it on first use
func (l *ItemLocker) lockFor(itemID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[itemID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[itemID] = ch
	}
	return ch
}

// Acquire takes the item's lock, waiting up to wait. It returns false
// when the lock could not be taken in time.
func (l *ItemLocker) Acquire(itemID string, wait time.Duration) bool {
	ch := l.lockFor(itemID)

	select {
	case ch <- struct{}{}:
		return true
	case <-time.After(wait):
		return false
	}
}

// TryAcquire takes the item's lock only if it is immediately free
func (l *ItemLocker) TryAcquire(itemID string) bool {
	ch := l.lockFor(itemID)

	select {
	case ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees the item's lock. Calling Release without holding the
// lock panics, which surfaces double-release bugs immediately.
func (l *ItemLocker) Release(itemID string) {
	ch := l.lockFor(itemID)

	select {
	case <-ch:
	default:
		panic("item locker: release without acquire for item " + itemID)
	}
}
