package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nutrimilho/estoque-api/internal/application/analytics"
)

// DashboardHandler expone los agregados del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Indicadores globales del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Groups godoc
// @Summary      Resumen por grupo con datos de gráfico
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupRollupDTO
// @Router       /api/dashboard/groups [get]
func (h *DashboardHandler) Groups(c *fiber.Ctx) error {
	out, err := h.uc.GetGroupRollups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
