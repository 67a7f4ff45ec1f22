package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
)

// DashboardHandler tableros de lectura (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin godoc
// @Summary      Tablero financiero de la empresa
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.AdminFinancials(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SuperAdmin godoc
// @Summary      Métricas globales de la plataforma
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuperAdminDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/superadmin [get]
func (h *DashboardHandler) SuperAdmin(c *fiber.Ctx) error {
	out, err := h.uc.SuperAdminStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
