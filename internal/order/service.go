package order

import (
	"errors"
	"time"
)

var ErrBadStatus = errors.New("unknown order status")

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(o Order) (Order, error) {
	if len(o.Items) == 0 {
		return Order{}, errors.New("order has no items")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = StatusPending
	}
	return s.repo.Create(o)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListAll(limit, offset int) ([]Order, error) {
	return s.repo.ListAll(limit, offset)
}

func (s *Service) ListByDevice(deviceID string) ([]Order, error) {
	return s.repo.ListByDevice(deviceID)
}

func (s *Service) UpdateStatus(id int, status string) (Order, error) {
	if !validStatuses[status] {
		return Order{}, ErrBadStatus
	}
	return s.repo.UpdateStatus(id, status, time.Now().UTC().Format(time.RFC3339))
}
