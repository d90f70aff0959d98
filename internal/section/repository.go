package section

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("section not found")

type Repository interface {
	List(limit int) ([]Section, error)
	Create(s Section) (Section, error)
	Update(id int, s Section) (Section, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Section
	nextID  int
}

func NewInMemoryRepository(seed []Section) *InMemoryRepository {
	r := &InMemoryRepository{storage: append([]Section(nil), seed...), nextID: 1}
	for _, s := range seed {
		if s.SectionID >= r.nextID {
			r.nextID = s.SectionID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List(limit int) ([]Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Section, len(r.storage))
	copy(out, r.storage)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Create(s Section) (Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.SectionID == 0 {
		s.SectionID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, s)
	return s, nil
}

func (r *InMemoryRepository) Update(id int, s Section) (Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].SectionID == id {
			s.SectionID = id
			r.storage[i] = s
			return s, nil
		}
	}
	return Section{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].SectionID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
