package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de consignación. Máquina de estados: activo -> cerrado
// (disponible llega a cero o cierre manual); no hay vuelta a activo.
const (
	ConsignacionStatusActive = "activo"
	ConsignacionStatusClosed = "cerrado"
)

// Consignacion es un lote de mercancía propiedad de una proveedora, vendido a
// través del POS de la empresa. Invariante: 0 <= Available <= Received, y
// Available es monótonamente no creciente.
type Consignacion struct {
	ID            string
	CompanyID     string
	ProveedoraID  string
	ProductID     string
	Received      int
	Available     int
	CostPrice     decimal.Decimal // costo informativo del lote
	SupplierPrice decimal.Decimal // lo que se debe a la proveedora por unidad vendida
	OwnPrice      decimal.Decimal // lo que cobra la empresa por unidad
	Status        string          // ver constantes ConsignacionStatus*
	Notes         string
	ReceivedAt    time.Time
}

// VentaConsignacion registra una venta de mercancía consignada: cuánto se
// debe a la proveedora y cuánto ganó la empresa, a los precios configurados
// del lote en el momento de la venta. Solo muta el flag Liquidado, que pasa a
// true cuando una liquidación captura el evento.
type VentaConsignacion struct {
	ID             string
	ConsignacionID string
	SaleID         string
	SaleDetailID   string
	Quantity       int
	UnitPriceUsed  decimal.Decimal
	SupplierPrice  decimal.Decimal
	AmountOwed     decimal.Decimal // Quantity × SupplierPrice
	OwnProfit      decimal.Decimal // Quantity × (UnitPriceUsed − SupplierPrice)
	Liquidado      bool
	SoldAt         time.Time
}
