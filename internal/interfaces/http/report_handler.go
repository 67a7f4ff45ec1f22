package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
)

// ReportHandler reportes de lectura para el dueño (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CuentasPorCobrar godoc
// @Summary      Cartera de cuentas por cobrar pendientes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReceivableReportResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/cuentas-cobrar [get]
func (h *ReportHandler) CuentasPorCobrar(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.CuentasPorCobrar(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Consignaciones godoc
// @Summary      Deuda de consignación por proveedora
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConsignacionReportResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/consignaciones [get]
func (h *ReportHandler) Consignaciones(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Consignaciones(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
