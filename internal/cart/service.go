package cart

import (
	"errors"

	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotPurchasable  = errors.New("product cannot be added to the cart")
	ErrVariantInactive = errors.New("variant is not available")
)

// Service resolves products and variants before delegating to the cart
// model, and persists the result per device.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Get(deviceID string) (Cart, error) {
	return s.repo.Load(deviceID)
}

// Add resolves the selected options to a concrete variant (nil means base
// pricing) and merges the line into the device's cart. A selection that
// matches no variant falls back to base pricing without error.
func (s *Service) Add(deviceID string, productID, quantity int, selectedOptions map[string]string) (Cart, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, ErrProductNotFound
	}
	if !p.AllowAddToCart {
		return Cart{}, ErrNotPurchasable
	}

	var variant *product.Variant
	if p.HasVariants() && len(selectedOptions) > 0 {
		variant = product.FindVariant(p, selectedOptions)
		if variant != nil && !variant.IsActive {
			return Cart{}, ErrVariantInactive
		}
	}

	c, err := s.repo.Load(deviceID)
	if err != nil {
		return Cart{}, err
	}
	c.Add(p, quantity, variant)
	if err := s.repo.Save(deviceID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) UpdateQuantity(deviceID, cartItemID string, quantity int) (Cart, error) {
	return s.mutate(deviceID, func(c *Cart) { c.UpdateQuantity(cartItemID, quantity) })
}

func (s *Service) Remove(deviceID, cartItemID string) (Cart, error) {
	return s.mutate(deviceID, func(c *Cart) { c.Remove(cartItemID) })
}

func (s *Service) Toggle(deviceID, cartItemID string) (Cart, error) {
	return s.mutate(deviceID, func(c *Cart) { c.Toggle(cartItemID) })
}

func (s *Service) ToggleAll(deviceID string, checked bool) (Cart, error) {
	return s.mutate(deviceID, func(c *Cart) { c.ToggleAll(checked) })
}

func (s *Service) RemoveSelected(deviceID string) (Cart, error) {
	return s.mutate(deviceID, func(c *Cart) { c.RemoveSelected() })
}

func (s *Service) Clear(deviceID string) error {
	_, err := s.mutate(deviceID, func(c *Cart) { c.Clear() })
	return err
}

func (s *Service) mutate(deviceID string, op func(*Cart)) (Cart, error) {
	c, err := s.repo.Load(deviceID)
	if err != nil {
		return Cart{}, err
	}
	op(&c)
	if err := s.repo.Save(deviceID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}
