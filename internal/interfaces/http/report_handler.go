package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
)

// ReportHandler genera los reportes descargables (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Relatório de Estoque en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from      query  string  false  "Fecha inicial (2006-01-02); default: 30 días atrás"
// @Param        to        query  string  false  "Fecha final (2006-01-02); default: hoy"
// @Param        group_id  query  string  false  "Limitar a un grupo"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	from, to, ok := parsePeriod(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, usar formato 2006-01-02"})
	}
	out, err := h.uc.StockReportPDF(from, to, c.Query("group_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-estoque.pdf"`)
	return c.Send(out)
}

// MovementsXLSX godoc
// @Summary      Historial de movimientos en planilla XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from      query  string  false  "Fecha inicial (2006-01-02); default: 30 días atrás"
// @Param        to        query  string  false  "Fecha final (2006-01-02); default: hoy"
// @Param        group_id  query  string  false  "Limitar a un grupo"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.xlsx [get]
func (h *ReportHandler) MovementsXLSX(c *fiber.Ctx) error {
	from, to, ok := parsePeriod(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, usar formato 2006-01-02"})
	}
	out, err := h.uc.MovementsXLSX(from, to, c.Query("group_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.xlsx"`)
	return c.Send(out)
}

// parsePeriod lee from/to como fechas; to incluye el día completo.
func parsePeriod(c *fiber.Ctx) (from, to time.Time, ok bool) {
	now := time.Now()
	to = now
	from = now.AddDate(0, 0, -30)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, false
		}
		to = t.Add(24*time.Hour - time.Second)
	}
	return from, to, true
}
