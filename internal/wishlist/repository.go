package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadySaved = errors.New("product already in wishlist")
	ErrNotSaved     = errors.New("product not in wishlist")
)

// Repository keeps each device's saved product ids in insertion order.
type Repository interface {
	Add(deviceID string, productID int) ([]int, error)
	Remove(deviceID string, productID int) ([]int, error)
	Get(deviceID string) ([]int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string][]int)}
}

func (r *InMemoryRepository) Add(deviceID string, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.lists[deviceID]
	for _, id := range ids {
		if id == productID {
			return nil, ErrAlreadySaved
		}
	}
	ids = append(ids, productID)
	r.lists[deviceID] = ids
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

func (r *InMemoryRepository) Remove(deviceID string, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.lists[deviceID]
	next := make([]int, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == productID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		return nil, ErrNotSaved
	}
	r.lists[deviceID] = next
	out := make([]int, len(next))
	copy(out, next)
	return out, nil
}

func (r *InMemoryRepository) Get(deviceID string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.lists[deviceID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}
