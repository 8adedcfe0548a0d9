package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByNameOrAbbreviation(name, abbreviation string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	Delete(id string) error
}
