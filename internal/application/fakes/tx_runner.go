package fakes

import (
	"context"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// TxRunner fake transaccional: toma un snapshot del Store antes del callback
// y lo restaura si falla, para poder verificar la atomicidad en los tests.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner sobre el store compartido.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	invRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	recRepo repository.ReceivableRepository,
	consigRepo repository.ConsignacionRepository,
	ventaRepo repository.VentaConsignacionRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(
		NewSaleRepo(t.s),
		NewInventoryRepo(t.s),
		NewCustomerRepo(t.s),
		NewReceivableRepo(t.s),
		NewConsignacionRepo(t.s),
		NewVentaConsignacionRepo(t.s),
	)
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

func (t *TxRunner) RunLiquidacion(ctx context.Context, fn func(
	ventaRepo repository.VentaConsignacionRepository,
	liqRepo repository.LiquidacionRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(NewVentaConsignacionRepo(t.s), NewLiquidacionRepo(t.s))
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

func (t *TxRunner) RunProvision(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(NewCompanyRepo(t.s), NewProductRepo(t.s), NewInventoryRepo(t.s))
	if err != nil {
		t.s.restore(snap)
	}
	return err
}
