package product

import "github.com/mehdibenatia/boutiqa-backend/internal/locale"

// VariantOption is one admin-authored axis of variation (e.g. Couleur).
// The French name doubles as the canonical lookup key for combinations.
type VariantOption struct {
	Name   locale.Text       `json:"name"`
	Kind   locale.OptionKind `json:"kind,omitempty"`
	Values []string          `json:"values"`
}

// Key returns the canonical option key used in variant option maps.
func (o VariantOption) Key() string {
	return o.Name.FR
}

// Variant is one concrete combination of option values with its own
// pricing, activity flag and images. Identity is the Options map; ID is a
// stable convenience string kept across regeneration for combinations that
// still exist.
type Variant struct {
	ID            string            `json:"id"`
	Options       map[string]string `json:"options"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"originalPrice,omitempty"`
	IsActive      bool              `json:"isActive"`
	Images        []string          `json:"images"`
}

// CustomSection is a free-form bilingual content block shown on the
// product page below the description.
type CustomSection struct {
	Title locale.Text `json:"title"`
	Body  locale.Text `json:"body"`
	Image string      `json:"image,omitempty"`
}

// Product maps to the `product` table. Document-shaped fields (names,
// options, variants, sections) live in jsonb columns.
type Product struct {
	ID            int         `json:"productId"`
	Name          locale.Text `json:"name"`
	Description   locale.Text `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice *float64    `json:"originalPrice,omitempty"`
	CategoryID    *int        `json:"categoryId,omitempty"`
	Image         string      `json:"image,omitempty"`
	SubImages     []string    `json:"subImages,omitempty"`
	Keywords      []string    `json:"keywords,omitempty"`

	VariantOptions []VariantOption `json:"variantOptions,omitempty"`
	Variants       []Variant       `json:"variants,omitempty"`

	AllowDirectPurchase bool `json:"allowDirectPurchase"`
	AllowAddToCart      bool `json:"allowAddToCart"`

	CustomSections      []CustomSection `json:"customSections,omitempty"`
	CertificationImages []string        `json:"certificationImages,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// HasVariants reports whether the product is sold through concrete
// variants rather than its own base price.
func (p Product) HasVariants() bool {
	return len(p.VariantOptions) > 0
}

// ListItem is the lightweight DTO returned by catalog list endpoints.
type ListItem struct {
	ProductID     int      `json:"productId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	CategoryID    *int     `json:"categoryId,omitempty"`
}
