package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
)

// ConsignacionHandler proveedoras, lotes, reporte y liquidaciones (protegido).
type ConsignacionHandler struct {
	uc         *consignacion.UseCase
	settlement *consignacion.SettlementUseCase
}

// NewConsignacionHandler construye el handler.
func NewConsignacionHandler(uc *consignacion.UseCase, settlement *consignacion.SettlementUseCase) *ConsignacionHandler {
	return &ConsignacionHandler{uc: uc, settlement: settlement}
}

// CreateProveedora godoc
// @Summary      Crear proveedora
// @Tags         consignacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProveedoraRequest  true  "nombre, telefono, email, notas"
// @Success      201   {object}  dto.ProveedoraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consignacion/proveedoras [post]
func (h *ConsignacionHandler) CreateProveedora(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateProveedoraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateProveedora(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProveedoras godoc
// @Summary      Listar proveedoras activas
// @Tags         consignacion
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProveedoraResponse
// @Router       /api/consignacion/proveedoras [get]
func (h *ConsignacionHandler) ListProveedoras(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ListProveedoras(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateConsignacion godoc
// @Summary      Registrar lote en consignación
// @Tags         consignacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsignacionRequest  true  "proveedora_id, producto_global_id, cantidad_recibida, precios"
// @Success      201   {object}  dto.ConsignacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consignacion [post]
func (h *ConsignacionHandler) CreateConsignacion(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateConsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateConsignacion(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConsignaciones godoc
// @Summary      Listar lotes en consignación
// @Tags         consignacion
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsignacionResponse
// @Router       /api/consignacion [get]
func (h *ConsignacionHandler) ListConsignaciones(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ListConsignaciones(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Reporte de proveedora
// @Description  Deuda sin liquidar, desglose por lote y liquidaciones anteriores.
// @Tags         consignacion
// @Security     Bearer
// @Produce      json
// @Param        proveedoraId  path  string  true  "id de la proveedora"
// @Success      200  {object}  dto.ReporteProveedoraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consignacion/reporte/{proveedoraId} [get]
func (h *ConsignacionHandler) Reporte(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ReporteProveedora(c.Context(), companyID, c.Params("proveedoraId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Liquidar godoc
// @Summary      Crear liquidación
// @Description  Captura atómica de la deuda sin liquidar a la fecha de corte; los eventos capturados quedan marcados.
// @Tags         consignacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        proveedoraId  path  string  true  "id de la proveedora"
// @Param        body  body  dto.CrearLiquidacionRequest  false  "notas"
// @Success      201   {object}  dto.LiquidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consignacion/liquidar/{proveedoraId} [post]
func (h *ConsignacionHandler) Liquidar(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CrearLiquidacionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.settlement.CrearLiquidacion(c.Context(), companyID, c.Params("proveedoraId"), in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarPago godoc
// @Summary      Registrar abono a liquidación
// @Description  Acumula el pago; parcial hasta cubrir el total, luego pagado.
// @Tags         consignacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        liquidacionId  path  string  true  "id de la liquidación"
// @Param        body  body  dto.RegistrarPagoRequest  true  "monto_pagado > 0"
// @Success      200   {object}  dto.LiquidacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consignacion/pago/{liquidacionId} [patch]
func (h *ConsignacionHandler) RegistrarPago(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.settlement.RegistrarPago(c.Context(), companyID, c.Params("liquidacionId"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
