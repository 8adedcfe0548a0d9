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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository. El catálogo de unidades es
// global (no tiene company_id).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, name, abbreviation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT id, name, abbreviation, created_at, updated_at FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNameOrAbbreviation obtiene una unidad cuyo nombre o abreviatura coincida.
func (r *UnitRepo) GetByNameOrAbbreviation(name, abbreviation string) (*entity.Unit, error) {
	query := `
		SELECT id, name, abbreviation, created_at, updated_at
		FROM units WHERE name = $1 OR abbreviation = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, abbreviation))
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, abbreviation, created_at, updated_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza una unidad.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `UPDATE units SET name = $2, abbreviation = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.Abbreviation, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}
