package session

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func TestCreateSessionIssuesDeviceToken(t *testing.T) {
	app := fiber.New()
	NewHandler("test-secret").RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/session", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body struct {
		DeviceID string `json:"deviceId"`
		Token    string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.DeviceID == "" || body.Token == "" {
		t.Fatalf("expected device id and token, got %+v", body)
	}

	parsed, err := jwt.Parse(body.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["device_id"] != body.DeviceID {
		t.Fatalf("claim mismatch: %v vs %s", claims["device_id"], body.DeviceID)
	}
}

func TestGetDeviceIDFromCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := GetDeviceIDFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.SendString(id)
	})

	// no claims in context
	res, _ := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}
}
