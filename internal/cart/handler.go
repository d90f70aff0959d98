package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehdibenatia/boutiqa-backend/internal/session"
)

// Handler delegates cart operations to the cart service. All routes need a
// device token; the cart rides on the device identity.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Post("/api/v1/cart/items/:id/toggle", h.toggleItem)
	app.Post("/api/v1/cart/select-all", h.toggleAll)
	app.Delete("/api/v1/cart/selected", h.removeSelected)
	app.Delete("/api/v1/cart", h.clearCart)
}

// cartResponse wraps the lines with the derived selected-only subtotal.
type cartResponse struct {
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

func respond(c *fiber.Ctx, cart Cart) error {
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return c.JSON(cartResponse{Items: cart.Items, Subtotal: cart.Subtotal()})
}

type addItemRequest struct {
	ProductID       int               `json:"productId"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	cart, err := h.service.Add(deviceID, payload.ProductID, payload.Quantity, payload.SelectedOptions)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrNotPurchasable, ErrVariantInactive:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return respond(c, cart)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	cart, err := h.service.Get(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cart, err := h.service.UpdateQuantity(deviceID, c.Params("id"), payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	cart, err := h.service.Remove(deviceID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

func (h *Handler) toggleItem(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	cart, err := h.service.Toggle(deviceID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

type selectAllRequest struct {
	Checked bool `json:"checked"`
}

func (h *Handler) toggleAll(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(selectAllRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cart, err := h.service.ToggleAll(deviceID, payload.Checked)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

func (h *Handler) removeSelected(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	cart, err := h.service.RemoveSelected(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, cart)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	deviceID, err := session.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.Clear(deviceID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
