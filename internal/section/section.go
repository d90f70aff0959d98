package section

import "github.com/mehdibenatia/boutiqa-backend/internal/locale"

// Section is a landing-page hero block managed from the back office.
type Section struct {
	SectionID int         `json:"sectionId"`
	Title     locale.Text `json:"title"`
	Subtitle  locale.Text `json:"subtitle"`
	Image     string      `json:"image,omitempty"`
	Link      string      `json:"link,omitempty"`
	Ord       int         `json:"ord"`
}

// Item is the public DTO with the texts resolved to one locale.
type Item struct {
	SectionID int    `json:"sectionId"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Image     string `json:"image,omitempty"`
	Link      string `json:"link,omitempty"`
}
