package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/sales"
	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ consignacion.TxRunner = (*TxRunner)(nil)
var _ usecase.ProvisionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con todos los repos que toca una venta
// (cabecera, stock, cliente, cuenta por cobrar, consignación) y hace Commit o
// Rollback como una sola unidad.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	invRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	recRepo repository.ReceivableRepository,
	consigRepo repository.ConsignacionRepository,
	ventaRepo repository.VentaConsignacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSaleRepository(tx),
		NewInventoryRepository(tx),
		NewCustomerRepository(tx),
		NewReceivableRepository(tx),
		NewConsignacionRepository(tx),
		NewVentaConsignacionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLiquidacion inicia una transacción para la captura de deuda: bloquear y
// leer eventos, crear liquidación con detalles y marcar los eventos, todo junto.
func (r *TxRunner) RunLiquidacion(ctx context.Context, fn func(
	ventaRepo repository.VentaConsignacionRepository,
	liqRepo repository.LiquidacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVentaConsignacionRepository(tx), NewLiquidacionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProvision inicia una transacción de aprovisionamiento (alta de empresa o
// producto + backfill de inventario en cero).
func (r *TxRunner) RunProvision(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewProductRepository(tx), NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
