package category

import "github.com/mehdibenatia/boutiqa-backend/internal/locale"

// Category is a bilingual catalog grouping. `ord` drives display order on
// the landing page (higher first).
type Category struct {
	CategoryID int         `json:"categoryId"`
	Name       locale.Text `json:"name"`
	Image      string      `json:"image,omitempty"`
	Ord        int         `json:"ord"`
}

// Item is the localized DTO returned by the public category API.
type Item struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
}
