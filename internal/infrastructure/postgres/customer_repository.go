package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserta un cliente nuevo con saldo en cero.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO clientes (id, company_id, nombre, telefono, email, saldo_pendiente, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name,
		nullIfEmpty(customer.Phone), nullIfEmpty(customer.Email), customer.SaldoPendiente,
	)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente. nil sin error = no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, nombre, telefono, email, saldo_pendiente, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Customer
	var phone, email *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &phone, &email,
		&c.SaldoPendiente, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Phone = derefStr(phone)
	c.Email = derefStr(email)
	return &c, nil
}

// ListByCompany clientes del tenant, paginados.
func (r *CustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_id, nombre, telefono, email, saldo_pendiente, created_at, updated_at
		FROM clientes WHERE company_id = $1
		ORDER BY nombre ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var phone, email *string
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &phone, &email,
			&c.SaldoPendiente, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Phone = derefStr(phone)
		c.Email = derefStr(email)
		out = append(out, &c)
	}
	return out, rows.Err()
}

// IncrementSaldo aplica saldo_pendiente += delta en una sola sentencia.
func (r *CustomerRepo) IncrementSaldo(id string, delta decimal.Decimal) error {
	query := `
		UPDATE clientes
		SET saldo_pendiente = saldo_pendiente + $2, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("increment saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
