package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProveedoraRequest alta de proveedora.
type CreateProveedoraRequest struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
	Email string `json:"email"`
	Notes string `json:"notas"`
}

// ProveedoraResponse proveedora con el resumen de sus lotes activos.
type ProveedoraResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"nombre"`
	Phone             string                 `json:"telefono,omitempty"`
	Email             string                 `json:"email,omitempty"`
	Notes             string                 `json:"notas,omitempty"`
	Active            bool                   `json:"activo"`
	ActiveLots        int                    `json:"consignaciones_activas"`
	ProductsOnConsign []ProveedoraLotSummary `json:"productos_en_consignacion,omitempty"`
}

// ProveedoraLotSummary lote activo en el listado de proveedoras.
type ProveedoraLotSummary struct {
	ID        string `json:"id"`
	Product   string `json:"producto"`
	Available int    `json:"disponibles"`
}

// CreateConsignacionRequest alta de un lote en consignación.
type CreateConsignacionRequest struct {
	ProveedoraID  string          `json:"proveedora_id"`
	ProductID     string          `json:"producto_global_id"`
	Received      int             `json:"cantidad_recibida"`
	CostPrice     decimal.Decimal `json:"precio_costo"`
	SupplierPrice decimal.Decimal `json:"precio_venta_proveedora"`
	OwnPrice      decimal.Decimal `json:"precio_venta_tuyo"`
	Notes         string          `json:"notas"`
}

// ConsignacionResponse lote con totales vendidos/adeudados.
type ConsignacionResponse struct {
	ID            string          `json:"id"`
	Proveedora    string          `json:"proveedora"`
	ProveedoraID  string          `json:"proveedora_id"`
	Product       string          `json:"producto"`
	ProductID     string          `json:"producto_global_id"`
	Received      int             `json:"cantidad_recibida"`
	Available     int             `json:"cantidad_disponible"`
	Sold          int             `json:"cantidad_vendida"`
	CostPrice     decimal.Decimal `json:"precio_costo"`
	SupplierPrice decimal.Decimal `json:"precio_venta_proveedora"`
	OwnPrice      decimal.Decimal `json:"precio_venta_tuyo"`
	AmountOwed    decimal.Decimal `json:"total_a_reportar_proveedora"`
	OwnProfit     decimal.Decimal `json:"tu_ganancia_total"`
	Status        string          `json:"estado"`
	ReceivedAt    time.Time       `json:"fecha_recepcion"`
	Notes         string          `json:"notas,omitempty"`
}

// DebtSummary resumen de deuda sin liquidar con una proveedora.
type DebtSummary struct {
	TotalDebt   decimal.Decimal `json:"total_deuda_actual"`
	TotalProfit decimal.Decimal `json:"tu_ganancia_total"`
	TotalSold   decimal.Decimal `json:"total_vendido"`
	ActiveLots  int             `json:"productos_en_consignacion"`
}

// ReporteVenta una venta consignada dentro del reporte por lote.
type ReporteVenta struct {
	Date       time.Time       `json:"fecha"`
	Quantity   int             `json:"cantidad"`
	SoldPrice  decimal.Decimal `json:"precio_vendido"`
	AmountOwed decimal.Decimal `json:"monto_reportar"`
	Profit     decimal.Decimal `json:"ganancia"`
}

// ReporteLote desglose por lote del reporte a proveedora. Solo incluye las
// ventas aún sin liquidar.
type ReporteLote struct {
	ConsignacionID string          `json:"consignacion_id"`
	Product        string          `json:"producto"`
	Received       int             `json:"recibidos"`
	Available      int             `json:"disponibles"`
	Sold           int             `json:"vendidos"`
	SupplierPrice  decimal.Decimal `json:"precio_proveedora"`
	OwnPrice       decimal.Decimal `json:"precio_tuyo"`
	Debt           decimal.Decimal `json:"deuda_a_proveedora"`
	Profit         decimal.Decimal `json:"tu_ganancia"`
	Sales          []ReporteVenta  `json:"ventas"`
}

// LiquidacionResponse liquidación con su estado de pago.
type LiquidacionResponse struct {
	ID           string          `json:"id"`
	ProveedoraID string          `json:"proveedora_id"`
	Total        decimal.Decimal `json:"monto_total"`
	AmountPaid   decimal.Decimal `json:"monto_pagado"`
	Status       string          `json:"estado"`
	CutoffDate   time.Time       `json:"fecha_corte"`
	PaidAt       *time.Time      `json:"fecha_pago,omitempty"`
	Notes        string          `json:"notas,omitempty"`
}

// ReporteProveedoraResponse reporte completo: deuda actual, desglose por lote
// y liquidaciones anteriores.
type ReporteProveedoraResponse struct {
	Proveedora    ProveedoraResponse    `json:"proveedora"`
	Resumen       DebtSummary           `json:"resumen"`
	Detalle       []ReporteLote         `json:"detalle"`
	Liquidaciones []LiquidacionResponse `json:"liquidaciones_anteriores"`
}

// CrearLiquidacionRequest cuerpo de POST /api/consignacion/liquidar/:proveedoraId.
type CrearLiquidacionRequest struct {
	Notes string `json:"notas"`
}

// RegistrarPagoRequest cuerpo de PATCH /api/consignacion/pago/:liquidacionId.
type RegistrarPagoRequest struct {
	Amount decimal.Decimal `json:"monto_pagado"`
}
