package checkout

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mehdibenatia/boutiqa-backend/internal/cart"
	"github.com/mehdibenatia/boutiqa-backend/internal/order"
	"github.com/mehdibenatia/boutiqa-backend/internal/settings"
)

var (
	ErrEmptySelection  = errors.New("no selected items to check out")
	ErrBadPayment      = errors.New("unsupported payment method")
	ErrCodDisabled     = errors.New("cash on delivery is disabled")
	ErrPaymentDeclined = errors.New("payment was not confirmed")
)

// ValidationError carries per-field messages for a rejected shipping form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid shipping details" }

// Request is the payload for placing an order.
type Request struct {
	PaymentMethod string             `json:"paymentMethod"`
	IntentID      string             `json:"intentId,omitempty"`
	ClientSecret  string             `json:"clientSecret,omitempty"`
	Shipping      order.ShippingInfo `json:"shipping"`
	Locale        string             `json:"locale,omitempty"`
}

type Service struct {
	carts    *cart.Service
	orders   *order.Service
	settings *settings.Service
	gateway  PaymentGateway
	validate *validator.Validate
}

func NewService(carts *cart.Service, orders *order.Service, st *settings.Service, gateway PaymentGateway) *Service {
	return &Service{
		carts:    carts,
		orders:   orders,
		settings: st,
		gateway:  gateway,
		validate: validator.New(),
	}
}

// CreateIntent opens a payment intent for the device's current selection.
func (s *Service) CreateIntent(deviceID string) (Intent, error) {
	c, err := s.carts.Get(deviceID)
	if err != nil {
		return Intent{}, err
	}
	if len(c.Selected()) == 0 {
		return Intent{}, ErrEmptySelection
	}
	cfg := s.settings.Get()
	return s.gateway.CreateIntent(c.Subtotal()+cfg.ShippingFee, cfg.Currency)
}

// PlaceOrder runs the checkout flow for the device's selected cart lines.
// For card payments the intent is updated with the shipping details and
// confirmed before any order exists; a declined or failed payment leaves
// both the cart and the order book untouched.
func (s *Service) PlaceOrder(deviceID string, req Request) (order.Order, error) {
	if fields := s.validateShipping(req.Shipping); len(fields) > 0 {
		return order.Order{}, &ValidationError{Fields: fields}
	}

	c, err := s.carts.Get(deviceID)
	if err != nil {
		return order.Order{}, err
	}
	selected := c.Selected()
	if len(selected) == 0 {
		return order.Order{}, ErrEmptySelection
	}

	cfg := s.settings.Get()
	subtotal := c.Subtotal()

	o := order.Order{
		DeviceID:      deviceID,
		Items:         orderItems(selected),
		Subtotal:      subtotal,
		ShippingFee:   cfg.ShippingFee,
		GrandTotal:    subtotal + cfg.ShippingFee,
		Currency:      cfg.Currency,
		PaymentMethod: req.PaymentMethod,
		Locale:        req.Locale,
		Shipping:      req.Shipping,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	switch req.PaymentMethod {
	case order.PaymentCard:
		if err := s.gateway.UpdateIntent(req.IntentID, req.Shipping); err != nil {
			return order.Order{}, err
		}
		conf, err := s.gateway.Confirm(req.ClientSecret)
		if err != nil {
			return order.Order{}, err
		}
		if conf.Status != "succeeded" {
			return order.Order{}, ErrPaymentDeclined
		}
		o.PaymentRef = conf.PaymentIntentID
		o.Status = order.StatusConfirmed
	case order.PaymentCashOnDelivery:
		if !cfg.CodEnabled {
			return order.Order{}, ErrCodDisabled
		}
		o.Status = order.StatusPending
	default:
		return order.Order{}, ErrBadPayment
	}

	placed, err := s.orders.Create(o)
	if err != nil {
		return order.Order{}, err
	}
	if err := s.carts.Clear(deviceID); err != nil {
		return placed, err
	}
	return placed, nil
}

func (s *Service) validateShipping(info order.ShippingInfo) map[string]string {
	err := s.validate.Struct(info)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "FullName":
				fields["fullName"] = "full name is required"
			case "Phone":
				fields["phone"] = "phone number is required"
			case "Address":
				fields["address"] = "address is required"
			case "City":
				fields["city"] = "city is required"
			}
		}
	}
	if len(fields) == 0 {
		fields["shipping"] = "shipping details are invalid"
	}
	return fields
}

func orderItems(lines []cart.Item) []order.Item {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item := order.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity,
			Image:     line.Image,
		}
		if line.Variant != nil {
			item.VariantID = line.Variant.ID
		}
		items = append(items, item)
	}
	return items
}
