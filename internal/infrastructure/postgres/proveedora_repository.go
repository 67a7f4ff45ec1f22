package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.ProveedoraRepository = (*ProveedoraRepo)(nil)

// ProveedoraRepo implementación de ProveedoraRepository.
type ProveedoraRepo struct {
	q Querier
}

// NewProveedoraRepository construye el adaptador.
func NewProveedoraRepository(q Querier) *ProveedoraRepo {
	return &ProveedoraRepo{q: q}
}

const proveedoraColumns = `id, company_id, nombre, telefono, email, notas, activa, created_at, updated_at`

// Create registra una proveedora nueva.
func (r *ProveedoraRepo) Create(p *entity.Proveedora) error {
	query := `
		INSERT INTO proveedoras (id, company_id, nombre, telefono, email, notas, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.Name,
		nullIfEmpty(p.Phone), nullIfEmpty(p.Email), nullIfEmpty(p.Notes), p.Active,
	)
	if err != nil {
		return fmt.Errorf("create proveedora: %w", err)
	}
	return nil
}

// GetByID obtiene una proveedora. nil sin error = no existe.
func (r *ProveedoraRepo) GetByID(id string) (*entity.Proveedora, error) {
	query := `SELECT ` + proveedoraColumns + ` FROM proveedoras WHERE id = $1`
	p, err := r.scanProveedora(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedora: %w", err)
	}
	return p, nil
}

// ListByCompany proveedoras del tenant, opcionalmente solo las activas.
func (r *ProveedoraRepo) ListByCompany(companyID string, activeOnly bool) ([]*entity.Proveedora, error) {
	query := `SELECT ` + proveedoraColumns + ` FROM proveedoras WHERE company_id = $1`
	if activeOnly {
		query += ` AND activa = true`
	}
	query += ` ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list proveedoras: %w", err)
	}
	defer rows.Close()

	var out []*entity.Proveedora
	for rows.Next() {
		p, err := r.scanProveedora(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proveedora: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProveedoraRepo) scanProveedora(row pgx.Row) (*entity.Proveedora, error) {
	var p entity.Proveedora
	var phone, email, notes *string
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &phone, &email, &notes,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Phone = derefStr(phone)
	p.Email = derefStr(email)
	p.Notes = derefStr(notes)
	return &p, nil
}
