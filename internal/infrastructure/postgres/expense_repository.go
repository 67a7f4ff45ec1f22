package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create registra un gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO gastos (id, company_id, descripcion, categoria, monto, fecha_gasto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.CompanyID, expense.Description,
		nullIfEmpty(expense.Category), expense.Amount, expense.SpentAt,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// ListByCompany gastos del tenant, los más recientes primero.
func (r *ExpenseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, company_id, descripcion, categoria, monto, fecha_gasto, created_at
		FROM gastos WHERE company_id = $1
		ORDER BY fecha_gasto DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var category *string
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Description, &category,
			&e.Amount, &e.SpentAt, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = derefStr(category)
		out = append(out, &e)
	}
	return out, rows.Err()
}
