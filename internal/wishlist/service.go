package wishlist

import (
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

// Item is the public wishlist DTO, localized to one language.
type Item struct {
	ProductID     int      `json:"productId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	HasVariants   bool     `json:"hasVariants"`
}

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(deviceID string, productID int) ([]int, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.Add(deviceID, productID)
}

func (s *Service) Remove(deviceID string, productID int) ([]int, error) {
	return s.repo.Remove(deviceID, productID)
}

// List resolves the saved ids against the live catalog; ids of products
// deleted since saving are skipped.
func (s *Service) List(deviceID, lang string) ([]Item, error) {
	ids, err := s.repo.Get(deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.GetByID(id)
		if err != nil {
			continue
		}
		out = append(out, Item{
			ProductID:     p.ID,
			Name:          p.Name.In(lang),
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			HasVariants:   p.HasVariants(),
		})
	}
	return out, nil
}
