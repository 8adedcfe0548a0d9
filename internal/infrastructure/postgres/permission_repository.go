package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación de PermissionRepository. El catálogo es
// inmutable tras el seed.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Count devuelve el tamaño del catálogo.
func (r *PermissionRepo) Count() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM permissions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count permissions: %w", err)
	}
	return count, nil
}

// CreateMany inserta el catálogo. ON CONFLICT (name) DO NOTHING: dos procesos
// sembrando a la vez no chocan.
func (r *PermissionRepo) CreateMany(permissions []entity.Permission) error {
	ctx := context.Background()
	query := `
		INSERT INTO permissions (id, name, description, category, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (name) DO NOTHING`
	for _, p := range permissions {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := r.q.Exec(ctx, query, id, p.Name, p.Description, p.Category); err != nil {
			return fmt.Errorf("insert permission %s: %w", p.Name, err)
		}
	}
	return nil
}

// ListAll devuelve el catálogo ordenado por categoría y nombre.
func (r *PermissionRepo) ListAll() ([]entity.Permission, error) {
	query := `
		SELECT id, name, description, category, created_at
		FROM permissions ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByIDs devuelve cuántos de los IDs dados existen (sin contar repetidos).
func (r *PermissionRepo) CountByIDs(ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(DISTINCT id) FROM permissions WHERE id = ANY($1)`, ids,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count permissions by ids: %w", err)
	}
	return count, nil
}
