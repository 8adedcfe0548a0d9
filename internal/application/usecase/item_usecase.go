package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para ítems de catálogo.
type ItemUseCase struct {
	repo     repository.ItemRepository
	unitRepo repository.UnitRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, unitRepo repository.UnitRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, unitRepo: unitRepo}
}

// Create crea un ítem. El SKU es único por empresa y la unidad referenciada
// debe existir en el catálogo.
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.SKU == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		UnitID:      in.UnitID,
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem de la empresa.
func (uc *ItemUseCase) GetByID(companyID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista los ítems de la empresa con paginación.
func (uc *ItemUseCase) List(companyID string, page dto.PageRequest) ([]*dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// Update actualiza un ítem preservando la unicidad del SKU por empresa.
func (uc *ItemUseCase) Update(companyID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.SKU != "" && in.SKU != item.SKU {
		existing, err := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		item.SKU = in.SKU
	}
	if in.UnitID != "" && in.UnitID != item.UnitID {
		unit, err := uc.unitRepo.GetByID(in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrInvalidInput
		}
		item.UnitID = in.UnitID
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}

	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem de la empresa.
func (uc *ItemUseCase) Delete(companyID, id string) error {
	item, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(item.ID)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		UnitID:      i.UnitID,
		Name:        i.Name,
		SKU:         i.SKU,
		Description: i.Description,
		Quantity:    i.Quantity,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
