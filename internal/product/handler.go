package product

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog to the storefront and the admin panel.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
	app.Get("/api/v1/products/:id<[0-9]+>/image", h.getImage)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/admin/products/:id<[0-9]+>", h.deleteProduct)
	app.Post("/api/v1/admin/products/:id<[0-9]+>/image", h.uploadImage)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	f := Filter{Limit: 100}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}
	if cat := c.Query("category"); cat != "" {
		if v, err := strconv.Atoi(cat); err == nil {
			f.CategoryID = &v
		}
	}
	f.Keyword = c.Query("keyword")

	products, err := h.service.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	lang := c.Query("lang", "ar")
	items := make([]ListItem, 0, len(products))
	for _, p := range products {
		items = append(items, ListItem{
			ProductID:     p.ID,
			Name:          p.Name.In(lang),
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			CategoryID:    p.CategoryID,
		})
	}
	return c.JSON(items)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	created, err := h.service.Create(*payload)
	if err != nil {
		return writeSaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	updated, err := h.service.Update(id, *payload)
	if err != nil {
		return writeSaveError(c, err)
	}
	return c.JSON(updated)
}

// writeSaveError maps service failures: validation maps come back as a
// field-scoped errors object so the admin form can render them inline.
func writeSaveError(c *fiber.Ctx, err error) error {
	if verr, ok := err.(*ValidationError); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  verr.Fields,
		})
	}
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// image endpoints need the postgres repository for the bytea column; they
// are no-ops against other repository implementations.

func (h *Handler) uploadImage(c *fiber.Ctx) error {
	repo, ok := h.service.repo.(*PostgresRepository)
	if !ok {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"message": "image storage unavailable"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "file is required"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := repo.SaveImage(id, b); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("ok")
}

func (h *Handler) getImage(c *fiber.Ctx) error {
	repo, ok := h.service.repo.(*PostgresRepository)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("image not available")
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	data, path, err := repo.GetImage(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("not found")
	}
	if len(data) > 0 {
		c.Set("Content-Type", http.DetectContentType(data))
		return c.Send(data)
	}
	if path != "" {
		return c.SendFile("." + path)
	}
	return c.Status(fiber.StatusNotFound).SendString("image not available")
}
