package handlers

import (
	"github.com/gofiber/fiber/v2"

	"packtrack/internal/domain"
	"packtrack/internal/log"
	"packtrack/internal/services"
)

type TransferHandler struct {
	Transfer *services.TransferService
}

func (h *TransferHandler) Export(c *fiber.Ctx) error {
	p, err := h.Transfer.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	log.Info(c, "transfer.export", map[string]any{
		"export_id": p.ExportID, "suitcases": len(p.Suitcases), "items": len(p.Items),
	})
	return c.JSON(p)
}

// Import is destructive: the payload replaces the entire dataset.
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	var p domain.ExportPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data format"})
	}
	// Both collections must be present; empty arrays are fine.
	if p.Suitcases == nil || p.Items == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data format"})
	}
	counts, version, err := h.Transfer.Import(p)
	if err != nil {
		log.Error(c, "transfer.import", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	log.Info(c, "transfer.import", map[string]any{"version": version, "items": counts.Items})
	return c.JSON(fiber.Map{"success": true, "imported": counts, "version": version})
}
