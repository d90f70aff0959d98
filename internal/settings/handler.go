package settings

import "github.com/gofiber/fiber/v2"

// Service provides access to the storefront settings document.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Get() Settings {
	current, err := s.repo.Get()
	if err != nil {
		return Defaults()
	}
	return current
}

func (s *Service) Put(next Settings) error {
	return s.repo.Put(next)
}

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/settings", h.getSettings)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Put("/api/v1/admin/settings", h.putSettings)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Get())
}

func (h *Handler) putSettings(c *fiber.Ctx) error {
	payload := new(Settings)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Currency == "" || payload.ShippingFee < 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "invalid settings"})
	}
	if err := h.service.Put(*payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(*payload)
}
