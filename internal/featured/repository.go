package featured

import "sync"

// Repository keeps the ordered list of featured product ids.
type Repository interface {
	List() ([]int, error)
	Replace(productIDs []int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu  sync.RWMutex
	ids []int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List() ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

func (r *InMemoryRepository) Replace(productIDs []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append([]int(nil), productIDs...)
	return nil
}
