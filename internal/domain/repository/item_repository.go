package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByIDAndCompany(id, companyID string) (*entity.Item, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
