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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, unit_id, name, sku, description, quantity, created_at, updated_at`

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.UnitID, item.Name, item.SKU, item.Description, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDAndCompany obtiene un ítem verificando que pertenece a la empresa.
func (r *ItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByCompanyAndSKU obtiene un ítem por empresa y SKU (unicidad).
func (r *ItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, sku))
}

// ListByCompany lista ítems de la empresa con paginación.
func (r *ItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.UnitID, &i.Name, &i.SKU, &i.Description, &i.Quantity, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un ítem.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET unit_id = $2, name = $3, sku = $4, description = $5, quantity = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UnitID, item.Name, item.SKU, item.Description, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(&i.ID, &i.CompanyID, &i.UnitID, &i.Name, &i.SKU, &i.Description, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}
