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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, address, phone, email, gst, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.Phone, company.Email, company.GST, company.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, gst, password_hash, created_at, updated_at
		FROM companies WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail obtiene una empresa por email (login).
func (r *CompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, gst, password_hash, created_at, updated_at
		FROM companies WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// ExistsByUniqueFields indica si ya existe una empresa con ese email, teléfono o GST.
func (r *CompanyRepo) ExistsByUniqueFields(email, phone, gst string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1 OR phone = $2 OR gst = $3)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, email, phone, gst).Scan(&exists); err != nil {
		return false, fmt.Errorf("check company uniqueness: %w", err)
	}
	return exists, nil
}

// Update actualiza los datos de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, phone = $4, email = $5, gst = $6, password_hash = $7, updated_at = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.Phone, company.Email, company.GST, company.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.GST, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
