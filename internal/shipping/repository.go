package shipping

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("shipping profile not found")

type Repository interface {
	List(deviceID string) ([]Profile, error)
	Create(p Profile) (Profile, error)
	Update(deviceID string, profileID int, p Profile) (Profile, error)
	Delete(deviceID string, profileID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles []Profile
	nextID   int
}

func NewInMemoryRepository(seed []Profile) *InMemoryRepository {
	r := &InMemoryRepository{profiles: append([]Profile(nil), seed...), nextID: 1}
	for _, p := range seed {
		if p.ProfileID >= r.nextID {
			r.nextID = p.ProfileID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List(deviceID string) ([]Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Profile, 0)
	for _, p := range r.profiles {
		if p.DeviceID == deviceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(p Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ProfileID == 0 {
		p.ProfileID = r.nextID
		r.nextID++
	}
	r.profiles = append(r.profiles, p)
	return p, nil
}

func (r *InMemoryRepository) Update(deviceID string, profileID int, p Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.profiles {
		if r.profiles[i].DeviceID == deviceID && r.profiles[i].ProfileID == profileID {
			p.ProfileID = profileID
			p.DeviceID = deviceID
			p.CreatedAt = r.profiles[i].CreatedAt
			r.profiles[i] = p
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(deviceID string, profileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.profiles {
		if r.profiles[i].DeviceID == deviceID && r.profiles[i].ProfileID == profileID {
			r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
