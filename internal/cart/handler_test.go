package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Device-ID"); v != "" {
			// c.Get returns a string aliasing fasthttp's pooled request
			// buffer; copy it so the claim survives past this request.
			claims := jwt.MapClaims{"device_id": strings.Clone(v)}
			tok := &jwt.Token{Claims: claims}
			c.Locals("device", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func seedProducts() *product.InMemoryRepository {
	options := []product.VariantOption{
		{Name: locale.Text{AR: "اللون", FR: "Couleur"}, Values: []string{"rouge", "bleu"}},
	}
	p := product.Product{
		ID:             1,
		Name:           locale.Text{AR: "قميص", FR: "Chemise"},
		Price:          100,
		AllowAddToCart: true,
		VariantOptions: options,
		Variants:       product.Reconcile(options, nil),
	}
	p.Variants[0].Price = 90
	p.Variants[1].Price = 95

	noCart := product.Product{
		ID:                  2,
		Name:                locale.Text{AR: "هدية", FR: "Cadeau"},
		Price:               30,
		AllowDirectPurchase: true,
	}
	return product.NewInMemoryRepository([]product.Product{p, noCart})
}

func doJSON(t *testing.T, app *fiber.App, method, path, device, body string) ([]byte, int) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if device != "" {
		req.Header.Set("X-Device-ID", device)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	return b, res.StatusCode
}

func TestCartRoutes_Flow(t *testing.T) {
	service := NewService(NewInMemoryRepository(), product.NewService(seedProducts()))
	app := makeAppWithCartHandler(NewHandler(service))

	// unauthorized without a device token
	_, code := doJSON(t, app, "GET", "/api/v1/cart", "", "")
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without device token, got %d", code)
	}

	// add with a resolved variant
	b, code := doJSON(t, app, "POST", "/api/v1/cart/items", "dev-1",
		`{"productId":1,"quantity":2,"selectedOptions":{"Couleur":"bleu"}}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d: %s", code, string(b))
	}
	var resp cartResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", resp)
	}
	if resp.Items[0].Variant == nil || resp.Items[0].Variant.ID != "bleu" {
		t.Fatalf("expected resolved bleu variant, got %+v", resp.Items[0].Variant)
	}
	if resp.Subtotal != 190 {
		t.Fatalf("expected subtotal 190, got %v", resp.Subtotal)
	}

	// same selection merges
	b, _ = doJSON(t, app, "POST", "/api/v1/cart/items", "dev-1",
		`{"productId":1,"quantity":3,"selectedOptions":{"Couleur":"bleu"}}`)
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %+v", resp.Items)
	}

	// unresolved selection falls back to base pricing, distinct line
	b, _ = doJSON(t, app, "POST", "/api/v1/cart/items", "dev-1",
		`{"productId":1,"quantity":1,"selectedOptions":{"Couleur":"vert"}}`)
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Items))
	}
	if resp.Items[1].Variant != nil {
		t.Fatalf("expected base-price line, got variant %+v", resp.Items[1].Variant)
	}
	if resp.Subtotal != 5*95+100 {
		t.Fatalf("expected subtotal 575, got %v", resp.Subtotal)
	}

	// add-to-cart disabled product is rejected
	_, code = doJSON(t, app, "POST", "/api/v1/cart/items", "dev-1", `{"productId":2}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409 for non-cartable product, got %d", code)
	}

	// quantity below 1 removes the line
	id := resp.Items[1].CartItemID
	b, _ = doJSON(t, app, "PATCH", "/api/v1/cart/items/"+id, "dev-1", `{"quantity":0}`)
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 1 {
		t.Fatalf("expected removal at quantity 0, got %+v", resp.Items)
	}

	// deselect drops the subtotal to zero but keeps the line
	id = resp.Items[0].CartItemID
	b, _ = doJSON(t, app, "POST", "/api/v1/cart/items/"+id+"/toggle", "dev-1", "")
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Selected {
		t.Fatalf("expected deselected line, got %+v", resp.Items)
	}
	if resp.Subtotal != 0 {
		t.Fatalf("expected subtotal 0, got %v", resp.Subtotal)
	}

	// select-all re-enables it
	b, _ = doJSON(t, app, "POST", "/api/v1/cart/select-all", "dev-1", `{"checked":true}`)
	_ = json.Unmarshal(b, &resp)
	if resp.Subtotal != 475 {
		t.Fatalf("expected subtotal 475 after select-all, got %v", resp.Subtotal)
	}

	// carts are device-scoped
	b, _ = doJSON(t, app, "GET", "/api/v1/cart", "dev-2", "")
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty cart for new device, got %+v", resp.Items)
	}

	// clear
	_, code = doJSON(t, app, "DELETE", "/api/v1/cart", "dev-1", "")
	if code != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", code)
	}
	b, _ = doJSON(t, app, "GET", "/api/v1/cart", "dev-1", "")
	_ = json.Unmarshal(b, &resp)
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", resp.Items)
	}
}

func TestCartRoutes_InactiveVariantRejected(t *testing.T) {
	repo := seedProducts()
	p, _ := repo.GetByID(1)
	p.Variants[0].IsActive = false
	if _, err := repo.Update(1, p); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	service := NewService(NewInMemoryRepository(), product.NewService(repo))
	app := makeAppWithCartHandler(NewHandler(service))

	b, code := doJSON(t, app, "POST", "/api/v1/cart/items", "dev-1",
		`{"productId":1,"quantity":1,"selectedOptions":{"Couleur":"rouge"}}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409 for inactive variant, got %d: %s", code, string(b))
	}
}
