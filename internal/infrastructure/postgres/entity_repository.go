package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.EntityRepository = (*EntityRepo)(nil)

// EntityRepo implementación de EntityRepository (usable con pool o tx).
type EntityRepo struct {
	q Querier
}

// NewEntityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntityRepository(q Querier) *EntityRepo {
	return &EntityRepo{q: q}
}

const entityColumns = `id, company_id, name, type, email, phone, address, credit_terms, status, created_at, updated_at`

// Create persiste un nuevo tercero.
func (r *EntityRepo) Create(e *entity.Entity) error {
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.CompanyID, e.Name, e.Type, e.Email, e.Phone, e.Address, e.CreditTerms, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entity: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *EntityRepo) GetByID(id string) (*entity.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDAndCompany obtiene un tercero verificando que pertenece a la empresa.
func (r *EntityRepo) GetByIDAndCompany(id, companyID string) (*entity.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByCompanyAndName obtiene un tercero por empresa y nombre (unicidad).
func (r *EntityRepo) GetByCompanyAndName(companyID, name string) (*entity.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE company_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, name))
}

// ListByCompany lista terceros de la empresa con paginación.
func (r *EntityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Entity
	for rows.Next() {
		var e entity.Entity
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Type, &e.Email, &e.Phone, &e.Address, &e.CreditTerms, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un tercero.
func (r *EntityRepo) Update(e *entity.Entity) error {
	query := `
		UPDATE entities
		SET name = $2, type = $3, email = $4, phone = $5, address = $6, credit_terms = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Type, e.Email, e.Phone, e.Address, e.CreditTerms, e.Status, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update entity: %w", err)
	}
	return nil
}

// Delete elimina un tercero.
func (r *EntityRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}

func (r *EntityRepo) scanOne(row pgx.Row) (*entity.Entity, error) {
	var e entity.Entity
	err := row.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Type, &e.Email, &e.Phone, &e.Address, &e.CreditTerms, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return &e, nil
}
