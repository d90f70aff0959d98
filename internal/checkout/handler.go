package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdibenatia/boutiqa-backend/internal/session"
)

// Handler exposes the checkout flow. Both routes need a device token.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout/intent", h.createIntent)
	app.Post("/api/v1/checkout", h.placeOrder)
}

func (h *Handler) createIntent(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	intent, err := h.service.CreateIntent(deviceID)
	if err != nil {
		if errors.Is(err, ErrEmptySelection) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(intent)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	placed, err := h.service.PlaceOrder(deviceID, *payload)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": verr.Error(), "errors": verr.Fields})
		case errors.Is(err, ErrEmptySelection), errors.Is(err, ErrCodDisabled):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrBadPayment):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrPaymentDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(placed)
}
