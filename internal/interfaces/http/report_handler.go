package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/reports"
)

// ReportHandler maneja la descarga del reporte de ventas (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesPDF godoc
// @Summary      Descargar el reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	out, err := h.uc.GenerateSalesReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(out)
}
