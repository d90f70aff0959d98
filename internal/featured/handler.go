package featured

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/featured", h.getFeatured)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/featured", h.getIDs)
	app.Put("/api/v1/admin/featured", h.replace)
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	lang := c.Query("lang", "ar")
	return c.JSON(h.service.List(lang))
}

func (h *Handler) getIDs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"productIds": h.service.IDs()})
}

type replaceRequest struct {
	ProductIDs []int `json:"productIds"`
}

func (h *Handler) replace(c *fiber.Ctx) error {
	payload := new(replaceRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Replace(payload.ProductIDs); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "unknown product id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"productIds": h.service.IDs()})
}
