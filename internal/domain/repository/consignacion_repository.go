package repository

import "github.com/tu-usuario/cosmetica-saas/internal/domain/entity"

// ProveedoraRepository define el puerto de persistencia para proveedoras.
type ProveedoraRepository interface {
	Create(p *entity.Proveedora) error
	GetByID(id string) (*entity.Proveedora, error)
	ListByCompany(companyID string, activeOnly bool) ([]*entity.Proveedora, error)
}

// ConsignacionRepository define el puerto de los lotes en consignación.
// La disponibilidad del lote SOLO se muta vía DecrementAvailable, que aplica
// la guarda condicional (available >= qty) en la misma sentencia.
type ConsignacionRepository interface {
	Create(c *entity.Consignacion) error
	GetByID(id string) (*entity.Consignacion, error)
	ListByCompany(companyID string) ([]*entity.Consignacion, error)
	ListByProveedora(companyID, proveedoraID string) ([]*entity.Consignacion, error)
	// FindOldestActive busca el lote activo más antiguo (fecha_recepcion ASC)
	// con disponibilidad > 0 para el producto, bloqueando la fila (FOR UPDATE)
	// cuando corre dentro de una transacción. nil sin error = no hay lote.
	FindOldestActive(companyID, productID string) (*entity.Consignacion, error)
	// DecrementAvailable descuenta qty del disponible y cierra el lote si
	// llega a cero. Devuelve el lote actualizado; falla si available < qty.
	DecrementAvailable(id string, qty int) (*entity.Consignacion, error)
	Close(id string) error
}

// VentaConsignacionRepository define el puerto de los eventos de venta de
// mercancía consignada.
type VentaConsignacionRepository interface {
	Create(v *entity.VentaConsignacion) error
	// ListUnsettledByProveedora devuelve los eventos con liquidado=false de
	// todos los lotes de la proveedora. forUpdate bloquea las filas para la
	// captura atómica de una liquidación.
	ListUnsettledByProveedora(companyID, proveedoraID string, forUpdate bool) ([]*entity.VentaConsignacion, error)
	ListByConsignacion(consignacionID string) ([]*entity.VentaConsignacion, error)
	// MarkLiquidadas pone liquidado=true en los eventos dados.
	MarkLiquidadas(ids []string) error
}
