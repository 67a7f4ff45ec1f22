package sales

import (
	"context"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta completa (cabecera,
// líneas, stock, cuenta por cobrar y eventos de consignación) se confirme o
// se revierta como una sola unidad.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		recRepo repository.ReceivableRepository,
		consigRepo repository.ConsignacionRepository,
		ventaRepo repository.VentaConsignacionRepository,
	) error) error
}
