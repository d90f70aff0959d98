package settings

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeSettingsApp() *fiber.App {
	handler := NewHandler(NewService(NewInMemoryRepository()))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterAdminRoutes(app)
	return app
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	app := makeSettingsApp()

	req := httptest.NewRequest("GET", "/api/v1/settings", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	var got Settings
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Currency != "MAD" || got.ShippingFee != 30 || !got.CodEnabled {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	body := `{"storeName":{"ar":"متجري","fr":"Ma boutique"},"currency":"MAD","shippingFee":45,"codEnabled":false}`
	req2 := httptest.NewRequest("PUT", "/api/v1/admin/settings", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for put, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("GET", "/api/v1/settings", nil)
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if err := json.Unmarshal(b3, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ShippingFee != 45 || got.CodEnabled {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestSettingsRejectsBadUpdate(t *testing.T) {
	app := makeSettingsApp()

	for _, body := range []string{
		`{"currency":"","shippingFee":10}`,
		`{"currency":"MAD","shippingFee":-1}`,
	} {
		req := httptest.NewRequest("PUT", "/api/v1/admin/settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusUnprocessableEntity {
			t.Errorf("expected 422 for %s, got %d", body, res.StatusCode)
		}
	}
}
