package featured

// Item is the public DTO: a catalog product surfaced on the landing page,
// with the texts resolved to one locale.
type Item struct {
	ProductID     int      `json:"productId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	HasVariants   bool     `json:"hasVariants"`
}
