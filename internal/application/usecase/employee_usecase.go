package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// employeeNotifier emite el aviso de alta de empleado. Best-effort: el caso de
// uso no falla si el aviso no se pudo crear.
type employeeNotifier interface {
	NotifyEmployeeAdded(employee *entity.Employee, roleName string)
}

// EmployeeUseCase casos de uso de empleados. Todas las operaciones están
// acotadas a la empresa del principal autenticado.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.RoleRepository
	notifier     employeeNotifier
}

// NewEmployeeUseCase construye el caso de uso. notifier puede ser nil.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, roleRepo repository.RoleRepository, notifier employeeNotifier) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, roleRepo: roleRepo, notifier: notifier}
}

// Create registra un empleado de la empresa. El rol debe existir y pertenecer
// a la MISMA empresa; el email debe ser único.
func (uc *EmployeeUseCase) Create(companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.RoleID == "" {
		return nil, domain.ErrInvalidInput
	}

	role, err := uc.roleRepo.GetByIDAndCompany(in.RoleID, companyID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.employeeRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		RoleID:       role.ID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyEmployeeAdded(employee, role.Name)
	}

	return toEmployeeResponse(employee, role), nil
}

// GetByID obtiene un empleado de la empresa.
func (uc *EmployeeUseCase) GetByID(companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	role, err := uc.roleRepo.GetByID(employee.RoleID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee, role), nil
}

// List lista los empleados de la empresa con su rol vigente.
func (uc *EmployeeUseCase) List(companyID string) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.employeeRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		role, err := uc.roleRepo.GetByID(e.RoleID)
		if err != nil {
			return nil, err
		}
		out = append(out, toEmployeeResponse(e, role))
	}
	return out, nil
}

// Update actualiza datos del empleado. Si cambia el rol, el nuevo debe
// pertenecer a la misma empresa.
func (uc *EmployeeUseCase) Update(companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != "" && in.Email != employee.Email {
		existing, err := uc.employeeRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		employee.Email = in.Email
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.RoleID != "" && in.RoleID != employee.RoleID {
		role, err := uc.roleRepo.GetByIDAndCompany(in.RoleID, companyID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrInvalidInput
		}
		employee.RoleID = role.ID
	}

	employee.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(employee); err != nil {
		return nil, err
	}

	role, err := uc.roleRepo.GetByID(employee.RoleID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee, role), nil
}

// UpdateRole reasigna el rol del empleado. El nuevo rol debe pertenecer a la
// misma empresa; el cambio surte efecto en la siguiente petición del empleado
// sin que tenga que reloguearse.
func (uc *EmployeeUseCase) UpdateRole(companyID, id string, in dto.UpdateEmployeeRoleRequest) (*dto.EmployeeResponse, error) {
	if in.RoleID == "" {
		return nil, domain.ErrInvalidInput
	}

	employee, err := uc.employeeRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	role, err := uc.roleRepo.GetByIDAndCompany(in.RoleID, companyID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidInput
	}

	employee.RoleID = role.ID
	employee.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee, role), nil
}

// Delete elimina un empleado de la empresa.
func (uc *EmployeeUseCase) Delete(companyID, id string) error {
	employee, err := uc.employeeRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.employeeRepo.Delete(employee.ID)
}

func toEmployeeResponse(e *entity.Employee, role *entity.Role) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if role != nil {
		resp.Role = toRoleResponse(role)
	}
	return resp
}
