package repository

import "github.com/tu-usuario/cosmetica-saas/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Expense, error)
}
