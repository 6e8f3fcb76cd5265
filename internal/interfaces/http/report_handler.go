package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/petshop-pos/internal/application/analytics"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain"
)

// ReportHandler sirve el reporte de ventas por período, en JSON y en PDF.
type ReportHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.AnalyticsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte de ventas del período
// @Tags         reports
// @Produce      json
// @Param        period  query  string  false  "today | week | month"  default(today)
// @Param        top     query  int     false  "Tamaño del ranking"    default(10)
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetReport(c.Query("period"), c.QueryInt("top", 0))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser today, week o month"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        period  query  string  false  "today | week | month"  default(today)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GetReportPDF(c.Query("period"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser today, week o month"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdf)
}
