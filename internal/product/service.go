package product

import (
	"errors"

	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
)

// ErrInvalid wraps a non-empty validation map from Validate.
var ErrInvalid = errors.New("product validation failed")

// ValidationError carries the field-to-message map to the handler layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrInvalid.Error() }

// ServiceInterface is consumed by the cart, featured and order packages.
type ServiceInterface interface {
	List(f Filter) ([]Product, error)
	GetByID(id int) (Product, error)
}

// Service owns catalog business logic. Variant reconciliation runs here at
// save time; storefront reads never regenerate combinations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Product, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// prepare resolves option kinds and reconciles the variant list against the
// product's current options. Disabling variants clears the list entirely.
func (s *Service) prepare(p Product, previous []Variant) Product {
	for i := range p.VariantOptions {
		if p.VariantOptions[i].Kind == "" {
			p.VariantOptions[i].Kind = locale.DetectKind(p.VariantOptions[i].Name)
		}
	}
	if p.HasVariants() {
		p.Variants = Reconcile(p.VariantOptions, previous)
	} else {
		p.Variants = nil
	}
	return p
}

func (s *Service) Create(p Product) (Product, error) {
	if errs := Validate(p, true); len(errs) > 0 {
		return Product{}, &ValidationError{Fields: errs}
	}
	p = s.prepare(p, p.Variants)
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if errs := Validate(p, false); len(errs) > 0 {
		return Product{}, &ValidationError{Fields: errs}
	}
	// carry over operator-entered variant data from the submitted list when
	// present, otherwise from what is stored
	previous := p.Variants
	if len(previous) == 0 {
		previous = existing.Variants
	}
	p = s.prepare(p, previous)
	if p.Image == "" {
		p.Image = existing.Image
	}
	p.CreatedAt = existing.CreatedAt
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
