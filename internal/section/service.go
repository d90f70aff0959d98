package section

import "errors"

var errIncompleteTitle = errors.New("section title is required in both Arabic and French")

// Service provides business logic for landing sections.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` sections.
func (s *Service) List(limit int) []Section {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Section{}
	}
	return items
}

func (s *Service) Create(sec Section) (Section, error) {
	if !sec.Title.Complete() {
		return Section{}, errIncompleteTitle
	}
	return s.repo.Create(sec)
}

func (s *Service) Update(id int, sec Section) (Section, error) {
	if !sec.Title.Complete() {
		return Section{}, errIncompleteTitle
	}
	return s.repo.Update(id, sec)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
