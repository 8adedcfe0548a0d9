package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// RoleTxRunner ejecuta una función contra un RoleRepository transaccional:
// todo lo que haga fn se confirma o revierte como unidad. Se usa para que la
// reasignación de permisos (delete + insert) nunca deje un rol a medias.
type RoleTxRunner interface {
	RunRole(fn func(roleRepo repository.RoleRepository) error) error
}

// RoleUseCase casos de uso de roles y del catálogo de permisos.
type RoleUseCase struct {
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
	employeeRepo   repository.EmployeeRepository
	txRunner       RoleTxRunner
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
	employeeRepo repository.EmployeeRepository,
	txRunner RoleTxRunner,
) *RoleUseCase {
	return &RoleUseCase{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		employeeRepo:   employeeRepo,
		txRunner:       txRunner,
	}
}

// Catalog devuelve el catálogo completo de permisos agrupado por categoría.
func (uc *RoleUseCase) Catalog() (*dto.PermissionCatalogResponse, error) {
	permissions, err := uc.permissionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]dto.PermissionResponse)
	for _, p := range permissions {
		grouped[p.Category] = append(grouped[p.Category], dto.PermissionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		})
	}
	return &dto.PermissionCatalogResponse{Permissions: grouped}, nil
}

// Create crea un rol de la empresa con su asignación inicial de permisos.
// Todos los IDs de permiso deben existir en el catálogo; rol y asignación se
// escriben en la misma transacción.
func (uc *RoleUseCase) Create(companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validatePermissionIDs(in.PermissionIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.RunRole(func(roleRepo repository.RoleRepository) error {
		if err := roleRepo.Create(role); err != nil {
			return err
		}
		return roleRepo.SetPermissions(role.ID, in.PermissionIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.load(role.ID, companyID)
}

// GetByID obtiene un rol de la empresa con sus permisos.
func (uc *RoleUseCase) GetByID(companyID, id string) (*dto.RoleResponse, error) {
	return uc.load(id, companyID)
}

// List lista los roles de la empresa con sus permisos.
func (uc *RoleUseCase) List(companyID string) ([]*dto.RoleResponse, error) {
	roles, err := uc.roleRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

// Update actualiza nombre/descripción y, si PermissionIDs no es nil, reemplaza
// la asignación completa de permisos en una transacción. PermissionIDs vacío
// (pero no nil) deja el rol sin permisos.
func (uc *RoleUseCase) Update(companyID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" {
		role.Name = in.Name
	}
	if in.Description != "" {
		role.Description = in.Description
	}
	role.UpdatedAt = time.Now()

	if in.PermissionIDs != nil {
		if err := uc.validatePermissionIDs(*in.PermissionIDs); err != nil {
			return nil, err
		}
		err = uc.txRunner.RunRole(func(roleRepo repository.RoleRepository) error {
			if err := roleRepo.Update(role); err != nil {
				return err
			}
			return roleRepo.SetPermissions(role.ID, *in.PermissionIDs)
		})
	} else {
		err = uc.roleRepo.Update(role)
	}
	if err != nil {
		return nil, err
	}

	return uc.load(role.ID, companyID)
}

// Delete elimina un rol de la empresa. Un rol con empleados asignados no se
// puede eliminar: primero hay que reasignarlos.
func (uc *RoleUseCase) Delete(companyID, id string) error {
	role, err := uc.roleRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}

	count, err := uc.employeeRepo.CountByRole(role.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRoleInUse
	}

	// role_permissions y roles caen en la misma transacción: un fallo entre
	// ambos DELETEs no puede dejar el rol sin permisos pero vivo.
	return uc.txRunner.RunRole(func(roleRepo repository.RoleRepository) error {
		return roleRepo.Delete(role.ID)
	})
}

// validatePermissionIDs verifica que todos los IDs existan en el catálogo.
func (uc *RoleUseCase) validatePermissionIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := uc.permissionRepo.CountByIDs(ids)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *RoleUseCase) load(id, companyID string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	perms := make([]dto.PermissionResponse, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, dto.PermissionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		})
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
