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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository (usable con pool o tx). Los
// GetBy* devuelven el rol con sus permisos poblados.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol (sin permisos; ver SetPermissions).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, company_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.CompanyID, role.Name, role.Description, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID con sus permisos.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM roles WHERE id = $1`
	role, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || role == nil {
		return role, err
	}
	role.Permissions, err = r.GetPermissions(role.ID)
	return role, err
}

// GetByIDAndCompany obtiene un rol verificando que pertenece a la empresa.
func (r *RoleRepo) GetByIDAndCompany(id, companyID string) (*entity.Role, error) {
	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM roles WHERE id = $1 AND company_id = $2`
	role, err := r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
	if err != nil || role == nil {
		return role, err
	}
	role.Permissions, err = r.GetPermissions(role.ID)
	return role, err
}

// ListByCompany lista los roles de la empresa con sus permisos.
func (r *RoleRepo) ListByCompany(companyID string) ([]*entity.Role, error) {
	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM roles WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, role := range list {
		if role.Permissions, err = r.GetPermissions(role.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza nombre y descripción del rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.Description, role.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol y su asignación de permisos.
func (r *RoleRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role permissions: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// SetPermissions reemplaza la asignación completa del rol (delete + insert).
// Llamar dentro de una transacción (ver TxRunner.RunRole) para no dejar el rol
// observable a medias.
func (r *RoleRepo) SetPermissions(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	for _, permissionID := range permissionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			roleID, permissionID,
		)
		if err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}
	return nil
}

// GetPermissions devuelve la asignación vigente del rol.
func (r *RoleRepo) GetPermissions(roleID string) ([]entity.Permission, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category, p.created_at
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.category, p.name`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("get role permissions: %w", err)
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

// GetPermissionNames devuelve solo los nombres de la asignación vigente. Es la
// consulta caliente de la autorización: una fila por permiso, sin joins extra.
func (r *RoleRepo) GetPermissionNames(roleID string) ([]string, error) {
	query := `
		SELECT p.name
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("get role permission names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan permission name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *RoleRepo) scanOne(row pgx.Row) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.CompanyID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
