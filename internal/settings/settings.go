package settings

import "github.com/mehdibenatia/boutiqa-backend/internal/locale"

// Settings is the single storefront configuration document managed from
// the back office.
type Settings struct {
	StoreName   locale.Text `json:"storeName"`
	Currency    string      `json:"currency"`
	ShippingFee float64     `json:"shippingFee"`
	CodEnabled  bool        `json:"codEnabled"`
}

// Defaults applied when nothing has been saved yet.
func Defaults() Settings {
	return Settings{
		StoreName:   locale.Text{AR: "المتجر", FR: "La boutique"},
		Currency:    "MAD",
		ShippingFee: 30,
		CodEnabled:  true,
	}
}
