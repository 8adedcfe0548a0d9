package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// PermissionRepository define el puerto de lectura/seed del catálogo de
// permisos. El catálogo es inmutable tras el seed: no hay Update ni Delete.
type PermissionRepository interface {
	Count() (int, error)
	// CreateMany inserta el catálogo con skip-duplicates (idempotente).
	CreateMany(permissions []entity.Permission) error
	// ListAll devuelve el catálogo ordenado por categoría y nombre.
	ListAll() ([]entity.Permission, error)
	// CountByIDs devuelve cuántos de los IDs dados existen (validación de asignación).
	CountByIDs(ids []string) (int, error)
}
