package cart

import "sync"

// Repository persists one cart per device identity. The cart itself stays
// a plain in-memory value; persistence is load/modify/save.
type Repository interface {
	Load(deviceID string) (Cart, error)
	Save(deviceID string, c Cart) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]Cart)}
}

// Load returns the stored cart, or an empty one for a new device.
func (r *InMemoryRepository) Load(deviceID string) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[deviceID]
	if !ok {
		return Cart{}, nil
	}
	out := Cart{Items: make([]Item, len(c.Items))}
	copy(out.Items, c.Items)
	return out, nil
}

func (r *InMemoryRepository) Save(deviceID string, c Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := Cart{Items: make([]Item, len(c.Items))}
	copy(stored.Items, c.Items)
	r.carts[deviceID] = stored
	return nil
}
