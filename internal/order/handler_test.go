package order

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
)

func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Device-ID"); v != "" {
			tok := &jwt.Token{Claims: jwt.MapClaims{"device_id": v}}
			c.Locals("device", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func seedOrder(t *testing.T, s *Service, deviceID string) Order {
	t.Helper()
	o, err := s.Create(Order{
		DeviceID: deviceID,
		Items: []Item{{
			ProductID: 1,
			Name:      locale.Text{AR: "قميص", FR: "Chemise"},
			UnitPrice: 95,
			Quantity:  2,
		}},
		Subtotal:      190,
		ShippingFee:   30,
		GrandTotal:    220,
		Currency:      "MAD",
		PaymentMethod: PaymentCashOnDelivery,
		Locale:        "fr",
		Shipping:      ShippingInfo{FullName: "A B", Phone: "0600000000", Address: "1 rue", City: "Casablanca"},
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func TestOrderRoutes(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	app := makeApp(NewHandler(service))
	seeded := seedOrder(t, service, "dev-1")
	seedOrder(t, service, "dev-2")

	// customers only see their own orders
	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-Device-ID", "dev-1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"deviceId":"dev-1"`) || strings.Contains(string(b), "dev-2") {
		t.Fatalf("expected only dev-1 orders, got %s", string(b))
	}

	// admin sees everything, newest first
	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders", nil))
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "dev-1") || !strings.Contains(string(b), "dev-2") {
		t.Fatalf("expected both orders, got %s", string(b))
	}

	// status updates validate the status value
	req = httptest.NewRequest("PATCH", "/api/v1/admin/orders/1/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad status, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("PATCH", "/api/v1/admin/orders/1/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	updated, err := service.GetByID(seeded.OrderID)
	if err != nil {
		t.Fatalf("get updated: %v", err)
	}
	if updated.Status != StatusShipped {
		t.Fatalf("expected shipped, got %q", updated.Status)
	}
}
