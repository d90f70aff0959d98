package shipping

import (
	"errors"
	"time"
)

var errIncomplete = errors.New("fullName, phone, address and city are required")

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(deviceID string) ([]Profile, error) {
	return s.repo.List(deviceID)
}

func (s *Service) Create(deviceID string, p Profile) (Profile, error) {
	if p.FullName == "" || p.Phone == "" || p.Address == "" || p.City == "" {
		return Profile{}, errIncomplete
	}
	p.DeviceID = deviceID
	now := time.Now().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

func (s *Service) Update(deviceID string, profileID int, p Profile) (Profile, error) {
	if p.FullName == "" || p.Phone == "" || p.Address == "" || p.City == "" {
		return Profile{}, errIncomplete
	}
	p.UpdatedAt = time.Now().Format(time.RFC3339)
	return s.repo.Update(deviceID, profileID, p)
}

func (s *Service) Delete(deviceID string, profileID int) error {
	return s.repo.Delete(deviceID, profileID)
}
