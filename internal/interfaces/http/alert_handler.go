package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/internal/application/dto"
)

// AlertHandler expone las alertas de estoque baixo (protegido).
// Las alertas son derivadas: no hay create/delete, solo lectura y read-flags.
type AlertHandler struct {
	evaluator *alerts.Evaluator
	scheduler *alerts.Scheduler
}

// NewAlertHandler construye el handler.
func NewAlertHandler(evaluator *alerts.Evaluator, scheduler *alerts.Scheduler) *AlertHandler {
	return &AlertHandler{evaluator: evaluator, scheduler: scheduler}
}

// List godoc
// @Summary      Listar alertas de estoque baixo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.evaluator.ToListResponse())
}

// MarkAsRead godoc
// @Summary      Marcar una alerta como leída
// @Tags         alerts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Router       /api/alerts/{id}/read [put]
func (h *AlertHandler) MarkAsRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	// Idempotente: marcar una alerta inexistente no es error.
	h.evaluator.MarkAsRead(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllAsRead godoc
// @Summary      Marcar todas las alertas como leídas
// @Tags         alerts
// @Security     Bearer
// @Success      204
// @Router       /api/alerts/read-all [put]
func (h *AlertHandler) MarkAllAsRead(c *fiber.Ctx) error {
	h.evaluator.MarkAllAsRead()
	return c.SendStatus(fiber.StatusNoContent)
}

// Refresh godoc
// @Summary      Forzar recomputación inmediata de alertas
// @Tags         alerts
// @Security     Bearer
// @Success      202
// @Router       /api/alerts/refresh [post]
func (h *AlertHandler) Refresh(c *fiber.Ctx) error {
	h.scheduler.Trigger()
	return c.SendStatus(fiber.StatusAccepted)
}
