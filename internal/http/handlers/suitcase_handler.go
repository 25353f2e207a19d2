package handlers

import (
	"github.com/gofiber/fiber/v2"

	"packtrack/internal/log"
	"packtrack/internal/services"
	"packtrack/internal/validate"
)

type SuitcaseHandler struct {
	Packing *services.PackingService
	Agg     *services.AggregationService
}

func (h *SuitcaseHandler) List(c *fiber.Ctx) error {
	out, err := h.Packing.ListSuitcases()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *SuitcaseHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		log.Warn(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing suitcase name"})
	}
	s, err := h.Packing.CreateSuitcase(name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s)
}

func (h *SuitcaseHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid suitcase id"})
	}
	n, err := h.Packing.DeleteSuitcase(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	log.Info(c, "suitcase.delete", map[string]any{"id": id, "deleted": n})
	return c.JSON(fiber.Map{"deleted": n})
}

func (h *SuitcaseHandler) Items(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid suitcase id"})
	}
	out, err := h.Agg.BySuitcase(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}
