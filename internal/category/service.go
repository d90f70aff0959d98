package category

import "errors"

var errIncompleteName = errors.New("category name is required in both Arabic and French")

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` categories.
func (s *Service) List(limit int) []Category {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Category{}
	}
	return items
}

func (s *Service) Create(c Category) (Category, error) {
	if !c.Name.Complete() {
		return Category{}, errIncompleteName
	}
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Category) (Category, error) {
	if !c.Name.Complete() {
		return Category{}, errIncompleteName
	}
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
