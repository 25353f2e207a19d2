package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"packtrack/internal/services"
	"packtrack/internal/validate"
)

type RegistryHandler struct {
	Registry *services.RegistryService
}

func (h *RegistryHandler) Categories(c *fiber.Ctx) error {
	out, err := h.Registry.Reg.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *RegistryHandler) ItemTypes(c *fiber.Ctx) error {
	out, err := h.Registry.Reg.ListItemTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

// SetCategory assigns (or reassigns) a category to an item type,
// creating both lazily if they are new names.
func (h *RegistryHandler) SetCategory(c *fiber.Ctx) error {
	rawName := c.Params("name")
	if unescaped, err := url.PathUnescape(rawName); err == nil {
		rawName = unescaped
	}
	name, ok := validate.Name(rawName)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item type"})
	}
	var body struct {
		Category string `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.Registry.EnsureItemType(name, body.Category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "itemType": name, "category": body.Category})
}
