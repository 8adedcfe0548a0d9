package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EntityRepository define el puerto de persistencia para Entity (clientes y
// proveedores).
type EntityRepository interface {
	Create(e *entity.Entity) error
	GetByID(id string) (*entity.Entity, error)
	GetByIDAndCompany(id, companyID string) (*entity.Entity, error)
	GetByCompanyAndName(companyID, name string) (*entity.Entity, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Entity, error)
	Update(e *entity.Entity) error
	Delete(id string) error
}
