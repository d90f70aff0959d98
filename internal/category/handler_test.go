package category

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
)

func TestCategoryRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]Category{
		{CategoryID: 1, Name: locale.Text{AR: "ملابس", FR: "Vêtements"}, Ord: 2},
	})
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterAdminRoutes(app)

	// localized public listing
	req := httptest.NewRequest("GET", "/api/v1/categories?lang=fr", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Vêtements") {
		t.Fatalf("expected French name, got %s", string(b))
	}

	// missing French name blocks the save
	req = httptest.NewRequest("POST", "/api/v1/admin/categories", strings.NewReader(`{"name":{"ar":"أحذية"}}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}

	// complete name saves
	req = httptest.NewRequest("POST", "/api/v1/admin/categories", strings.NewReader(`{"name":{"ar":"أحذية","fr":"Chaussures"}}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	// delete unknown id is a 404
	req = httptest.NewRequest("DELETE", "/api/v1/admin/categories/99", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
