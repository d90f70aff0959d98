package shipping

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithShippingHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Device-ID"); v != "" {
			claims := jwt.MapClaims{"device_id": v}
			tok := &jwt.Token{Claims: claims}
			c.Locals("device", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestShippingProfileRoutes(t *testing.T) {
	seed := []Profile{
		{ProfileID: 1, DeviceID: "dev-1", Label: "Maison", FullName: "Yassine El Amrani", Phone: "+212600000000", Address: "12 rue des Orangers", City: "Casablanca"},
	}
	handler := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := makeAppWithShippingHandler(handler)

	// unauthorized
	req := httptest.NewRequest("GET", "/api/v1/shipping-profiles", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// authorized GET returns the seeded profile
	req2 := httptest.NewRequest("GET", "/api/v1/shipping-profiles", nil)
	req2.Header.Set("X-Device-ID", "dev-1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), "Maison") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	// another device sees an empty list
	req3 := httptest.NewRequest("GET", "/api/v1/shipping-profiles", nil)
	req3.Header.Set("X-Device-ID", "dev-2")
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if strings.Contains(string(b3), "Maison") {
		t.Fatalf("profiles leaked across devices: %s", string(b3))
	}

	// incomplete form rejected
	req4 := httptest.NewRequest("POST", "/api/v1/shipping-profiles", strings.NewReader(`{"fullName":"A"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-Device-ID", "dev-1")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for incomplete form, got %d", res4.StatusCode)
	}

	// create then delete
	body := `{"label":"Bureau","fullName":"Yassine El Amrani","phone":"+212611111111","address":"5 avenue Hassan II","city":"Rabat"}`
	req5 := httptest.NewRequest("POST", "/api/v1/shipping-profiles", strings.NewReader(body))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-Device-ID", "dev-1")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if !strings.Contains(string(b5), "Bureau") {
		t.Fatalf("create response unexpected: %s", string(b5))
	}

	req6 := httptest.NewRequest("DELETE", "/api/v1/shipping-profiles/2", nil)
	req6.Header.Set("X-Device-ID", "dev-1")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for delete, got %d", res6.StatusCode)
	}

	req7 := httptest.NewRequest("GET", "/api/v1/shipping-profiles", nil)
	req7.Header.Set("X-Device-ID", "dev-1")
	res7, _ := app.Test(req7)
	b7, _ := io.ReadAll(res7.Body)
	if strings.Contains(string(b7), "Bureau") {
		t.Fatalf("delete did not remove entry: %s", string(b7))
	}
}
