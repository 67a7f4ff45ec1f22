package consignacion

import (
	"context"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de liquidación atados a esa tx. La captura de eventos y la
// creación de la liquidación deben confirmar o revertir juntas: un corte
// entre ambas permitiría contar la misma deuda dos veces.
type TxRunner interface {
	RunLiquidacion(ctx context.Context, fn func(
		ventaRepo repository.VentaConsignacionRepository,
		liqRepo repository.LiquidacionRepository,
	) error) error
}
