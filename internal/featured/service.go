package featured

import (
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

// Service resolves the featured id list against the live catalog. Ids of
// products that were deleted since curation are skipped.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// List returns the featured products in curated order, localized to `lang`.
func (s *Service) List(lang string) []Item {
	ids, err := s.repo.List()
	if err != nil {
		return []Item{}
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
	return out
}

// IDs returns the raw curated list for the back office.
func (s *Service) IDs() []int {
	ids, err := s.repo.List()
	if err != nil {
		return []int{}
	}
	return ids
}

// Replace swaps the curated list. Unknown product ids are rejected.
func (s *Service) Replace(ids []int) error {
	for _, id := range ids {
		if _, err := s.products.GetByID(id); err != nil {
			return err
		}
	}
	return s.repo.Replace(ids)
}
