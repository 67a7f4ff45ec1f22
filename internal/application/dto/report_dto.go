package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableReportRow una cuenta por cobrar pendiente con los datos de su
// venta, para el reporte de cartera.
type ReceivableReportRow struct {
	SaleID       string          `json:"venta_id"`
	CustomerID   string          `json:"cliente_id,omitempty"`
	CustomerName string          `json:"cliente_nombre,omitempty"`
	SaleTotal    decimal.Decimal `json:"monto_venta"`
	AmountDue    decimal.Decimal `json:"monto_adeudado"`
	Status       string          `json:"estado"`
	SoldAt       time.Time       `json:"fecha_venta"`
	DueDate      time.Time       `json:"fecha_vencimiento"`
	Overdue      bool            `json:"vencida"`
}

// ReceivableReportResponse cartera pendiente del tenant, ordenada por fecha
// de vencimiento.
type ReceivableReportResponse struct {
	Rows      []ReceivableReportRow `json:"cuentas"`
	Count     int                   `json:"numero_cuentas"`
	TotalDue  decimal.Decimal       `json:"total_adeudado"`
	OverdueN  int                   `json:"numero_vencidas"`
	Generated time.Time             `json:"generado_en"`
}

// ConsignacionReportRow deuda y actividad de una proveedora.
type ConsignacionReportRow struct {
	ProveedoraID   string          `json:"proveedora_id"`
	ProveedoraName string          `json:"proveedora_nombre"`
	ActiveLots     int             `json:"lotes_activos"`
	UnitsAvailable int             `json:"unidades_disponibles"`
	PendingEvents  int             `json:"eventos_pendientes"`
	AmountOwed     decimal.Decimal `json:"deuda_pendiente"`
	OwnProfit      decimal.Decimal `json:"ganancia_propia"`
}

// ConsignacionReportResponse resumen de consignación por proveedora.
type ConsignacionReportResponse struct {
	Rows      []ConsignacionReportRow `json:"proveedoras"`
	TotalOwed decimal.Decimal         `json:"deuda_total"`
	Generated time.Time               `json:"generado_en"`
}
