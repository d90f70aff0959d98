package order

import "github.com/mehdibenatia/boutiqa-backend/internal/locale"

// Order statuses follow the back-office workflow.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cod"
)

// ShippingInfo is the customer-entered delivery form.
type ShippingInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

// Item is a line snapshot taken at order time; later product edits never
// change what the customer bought.
type Item struct {
	ProductID int         `json:"productId"`
	VariantID string      `json:"variantId,omitempty"`
	Name      locale.Text `json:"name"`
	UnitPrice float64     `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
	Image     string      `json:"image,omitempty"`
}

// Order represents a placed purchase.
type Order struct {
	OrderID       int          `json:"orderId"`
	DeviceID      string       `json:"deviceId"`
	Items         []Item       `json:"items"`
	Subtotal      float64      `json:"subtotal"`
	ShippingFee   float64      `json:"shippingFee"`
	GrandTotal    float64      `json:"grandTotal"`
	Currency      string       `json:"currency"`
	PaymentMethod string       `json:"paymentMethod"`
	PaymentRef    string       `json:"paymentRef,omitempty"`
	Status        string       `json:"status"`
	Locale        string       `json:"locale"`
	Shipping      ShippingInfo `json:"shipping"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}
