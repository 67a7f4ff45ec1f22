package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/inventory"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

// InventoryHandler inventario propio del tenant (protegido).
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario de la empresa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Stock de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "producto_global_id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	rec, err := h.uc.GetStock(c.Context(), companyID, c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryRecordJSON(rec))
}

// AdjustStock godoc
// @Summary      Ajustar stock
// @Description  Aplica stock += delta. Un resultado negativo se rechaza con 400 sin tocar nada.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "producto_global_id"
// @Param        body  body  object{delta=int}  true  "delta distinto de cero"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.uc.AdjustStock(c.Context(), companyID, c.Params("productId"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryRecordJSON(rec))
}

// SetPricing godoc
// @Summary      Actualizar precios/stock
// @Description  Override administrativo; los campos ausentes no se tocan.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "producto_global_id"
// @Param        body  body  dto.SetPricingRequest  true  "precio_venta, precio_compra, stock (opcionales)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [patch]
func (h *InventoryHandler) SetPricing(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.SetPricingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.uc.SetPricing(c.Context(), companyID, c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryRecordJSON(rec))
}

func toInventoryRecordJSON(rec *entity.InventoryRecord) fiber.Map {
	return fiber.Map{
		"producto_global_id": rec.ProductID,
		"stock":              rec.Stock,
		"precio_compra":      rec.PurchasePrice,
		"precio_venta":       rec.SalePrice,
		"updated_at":         rec.UpdatedAt,
	}
}
