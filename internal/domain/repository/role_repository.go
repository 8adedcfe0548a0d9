package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role y su asignación
// de permisos. SetPermissions reemplaza la asignación completa (delete +
// insert); debe ejecutarse dentro de una transacción para que el rol nunca
// quede observable con cero permisos a mitad de reasignación.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByIDAndCompany(id, companyID string) (*entity.Role, error)
	// ListByCompany devuelve los roles con sus permisos poblados.
	ListByCompany(companyID string) ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
	SetPermissions(roleID string, permissionIDs []string) error
	// GetPermissions devuelve la asignación VIGENTE del rol, leída del store.
	GetPermissions(roleID string) ([]entity.Permission, error)
	// GetPermissionNames como GetPermissions pero solo los nombres (resolución por petición).
	GetPermissionNames(roleID string) ([]string, error)
}
