package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"packtrack/internal/domain"
	"packtrack/internal/log"
	"packtrack/internal/services"
	"packtrack/internal/validate"
)

type ItemHandler struct {
	Packing *services.PackingService
	Agg     *services.AggregationService
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.Agg.AllGroups()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *ItemHandler) Search(c *fiber.Ctx) error {
	out, err := h.Agg.Search(c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *ItemHandler) Summary(c *fiber.Ctx) error {
	out, err := h.Agg.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *ItemHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Type       string `json:"type"`
		SuitcaseID int64  `json:"suitcase_id"`
		Count      int    `json:"count"`
		Category   string `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	typ, ok := validate.Name(body.Type)
	if !ok || body.SuitcaseID < 1 {
		log.Warn(c, "validation.fail", map[string]any{"op": "items.add"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
	}
	count := validate.Count(body.Count)

	pos, err := h.Packing.AddItems(typ, body.SuitcaseID, count, body.Category)
	if err != nil {
		log.Error(c, "items.add", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"type": typ, "count": count, "suitcase_id": body.SuitcaseID,
		"position": pos, "rowsInserted": count,
	})
}

func (h *ItemHandler) Increment(c *fiber.Ctx) error {
	var body struct {
		Type       string `json:"type"`
		SuitcaseID int64  `json:"suitcase_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	typ, ok := validate.Name(body.Type)
	if !ok || body.SuitcaseID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
	}
	if err := h.Packing.Increment(typ, body.SuitcaseID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"type": typ, "suitcase_id": body.SuitcaseID, "added": 1})
}

func (h *ItemHandler) Decrement(c *fiber.Ctx) error {
	var body struct {
		Type       string `json:"type"`
		SuitcaseID int64  `json:"suitcase_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	typ, ok := validate.Name(body.Type)
	if !ok || body.SuitcaseID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
	}
	if err := h.Packing.Decrement(typ, body.SuitcaseID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"type": typ, "suitcase_id": body.SuitcaseID, "removed": 1})
}

func (h *ItemHandler) Reorder(c *fiber.Ctx) error {
	var body struct {
		Items []domain.PositionUpdate `json:"items"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(body.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No items to reorder"})
	}
	if err := h.Packing.Reorder(body.Items); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"updated": len(body.Items)})
}

func (h *ItemHandler) Rename(c *fiber.Ctx) error {
	var body struct {
		OldType    string `json:"oldType"`
		NewType    string `json:"newType"`
		SuitcaseID *int64 `json:"suitcase_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	oldType, ok1 := validate.Name(body.OldType)
	newType, ok2 := validate.Name(body.NewType)
	if !ok1 || !ok2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	n, err := h.Packing.Rename(oldType, newType, body.SuitcaseID)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "item type already exists"})
		}
		log.Error(c, "items.rename", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"oldType": oldType, "newType": newType, "updated": n})
}

func (h *ItemHandler) Move(c *fiber.Ctx) error {
	var body struct {
		Type           string `json:"type"`
		FromSuitcaseID int64  `json:"from_suitcase_id"`
		ToSuitcaseID   int64  `json:"to_suitcase_id"`
		Position       *int   `json:"position"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	typ, ok := validate.Name(body.Type)
	if !ok || body.FromSuitcaseID < 1 || body.ToSuitcaseID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	pos, n, err := h.Packing.Move(typ, body.FromSuitcaseID, body.ToSuitcaseID, body.Position)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"type": typ, "from_suitcase_id": body.FromSuitcaseID,
		"to_suitcase_id": body.ToSuitcaseID, "position": pos, "updated": n,
	})
}

func (h *ItemHandler) DeleteGroup(c *fiber.Ctx) error {
	rawType := c.Params("type")
	if unescaped, err := url.PathUnescape(rawType); err == nil {
		rawType = unescaped
	}
	typ, ok := validate.Name(rawType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item type"})
	}
	id, ok := validate.IntID(c.Params("suitcase_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid suitcase id"})
	}
	n, err := h.Packing.DeleteGroup(typ, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": n})
}
