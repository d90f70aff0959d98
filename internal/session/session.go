package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Carts, wishlists and orders are keyed by a device identity rather than a
// user account: the storefront has no authentication. A device obtains a
// long-lived token once and presents it on every stateful call.

const tokenTTL = 30 * 24 * time.Hour

// Handler issues device tokens.
type Handler struct {
	secret []byte
}

func NewHandler(secret string) *Handler {
	return &Handler{secret: []byte(secret)}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.createSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	deviceID := uuid.NewString()
	claims := jwt.MapClaims{
		"device_id": deviceID,
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{
		"deviceId": deviceID,
		"token":    signed,
	})
}

// GetDeviceIDFromCtx extracts the device identity set by the JWT middleware.
func GetDeviceIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("device")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if raw, ok := claims["device_id"]; ok {
		if id, ok := raw.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", fiber.ErrUnauthorized
}
