package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida. El catálogo es
// global: cualquier usuario autenticado con permiso lo lee y lo administra.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad. Nombre y abreviatura son únicos en el catálogo.
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" || in.Abbreviation == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByNameOrAbbreviation(in.Name, in.Abbreviation)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	unit := &entity.Unit{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Abbreviation: in.Abbreviation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// List lista el catálogo completo de unidades.
func (uc *UnitUseCase) List() ([]*dto.UnitResponse, error) {
	units, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// Update actualiza una unidad preservando la unicidad de nombre/abreviatura.
func (uc *UnitUseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" || in.Abbreviation != "" {
		name := in.Name
		if name == "" {
			name = unit.Name
		}
		abbr := in.Abbreviation
		if abbr == "" {
			abbr = unit.Abbreviation
		}
		existing, err := uc.repo.GetByNameOrAbbreviation(name, abbr)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != unit.ID {
			return nil, domain.ErrDuplicate
		}
		unit.Name = name
		unit.Abbreviation = abbr
	}

	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad del catálogo.
func (uc *UnitUseCase) Delete(id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(unit.ID)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:           u.ID,
		Name:         u.Name,
		Abbreviation: u.Abbreviation,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
