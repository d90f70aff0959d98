package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(o Order) (Order, error)
	GetByID(id int) (Order, error)
	ListAll(limit, offset int) ([]Order, error)
	ListByDevice(deviceID string) ([]Order, error)
	UpdateStatus(id int, status, updatedAt string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.OrderID = r.nextID
	r.nextID++
	r.storage = append(r.storage, o)
	return o, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.storage {
		if o.OrderID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListAll(limit, offset int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// newest first
	out := make([]Order, 0, len(r.storage))
	for i := len(r.storage) - 1; i >= 0; i-- {
		out = append(out, r.storage[i])
	}
	if offset > 0 {
		if offset >= len(out) {
			return []Order{}, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) ListByDevice(deviceID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for i := len(r.storage) - 1; i >= 0; i-- {
		if r.storage[i].DeviceID == deviceID {
			out = append(out, r.storage[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].OrderID == id {
			r.storage[i].Status = status
			r.storage[i].UpdatedAt = updatedAt
			return r.storage[i], nil
		}
	}
	return Order{}, ErrNotFound
}
