package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// EntityUseCase casos de uso CRUD para terceros (clientes y proveedores).
type EntityUseCase struct {
	repo repository.EntityRepository
}

// NewEntityUseCase construye el caso de uso.
func NewEntityUseCase(repo repository.EntityRepository) *EntityUseCase {
	return &EntityUseCase{repo: repo}
}

// Create crea un tercero. El nombre es único por empresa; el tipo debe ser
// CUSTOMER o BUSINESS.
func (uc *EntityUseCase) Create(companyID string, in dto.CreateEntityRequest) (*dto.EntityResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.EntityTypeCustomer && in.Type != entity.EntityTypeBusiness {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.EntityStatusActive
	}
	if in.Status != entity.EntityStatusActive && in.Status != entity.EntityStatusInactive {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	e := &entity.Entity{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Type:        in.Type,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreditTerms: in.CreditTerms,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

// GetByID obtiene un tercero de la empresa.
func (uc *EntityUseCase) GetByID(companyID, id string) (*dto.EntityResponse, error) {
	e, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEntityResponse(e), nil
}

// List lista los terceros de la empresa con paginación.
func (uc *EntityUseCase) List(companyID string, page dto.PageRequest) ([]*dto.EntityResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntityResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntityResponse(e))
	}
	return out, nil
}

// Update actualiza un tercero. Si cambia el nombre, el nuevo debe seguir
// siendo único dentro de la empresa.
func (uc *EntityUseCase) Update(companyID, id string, in dto.UpdateEntityRequest) (*dto.EntityResponse, error) {
	e, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" && in.Name != e.Name {
		existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		e.Name = in.Name
	}
	if in.Type != "" {
		if in.Type != entity.EntityTypeCustomer && in.Type != entity.EntityTypeBusiness {
			return nil, domain.ErrInvalidInput
		}
		e.Type = in.Type
	}
	if in.Status != "" {
		if in.Status != entity.EntityStatusActive && in.Status != entity.EntityStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		e.Status = in.Status
	}
	if in.Email != "" {
		e.Email = in.Email
	}
	if in.Phone != "" {
		e.Phone = in.Phone
	}
	if in.Address != "" {
		e.Address = in.Address
	}
	if in.CreditTerms != "" {
		e.CreditTerms = in.CreditTerms
	}

	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

// Delete elimina un tercero de la empresa.
func (uc *EntityUseCase) Delete(companyID, id string) error {
	e, err := uc.repo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(e.ID)
}

func toEntityResponse(e *entity.Entity) *dto.EntityResponse {
	return &dto.EntityResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		Type:        e.Type,
		Email:       e.Email,
		Phone:       e.Phone,
		Address:     e.Address,
		CreditTerms: e.CreditTerms,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
