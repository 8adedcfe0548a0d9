package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// UseCase maneja registro de compañías y login de ambos tipos de usuario.
type UseCase struct {
	companyRepo  repository.CompanyRepository
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.RoleRepository
	jwtSecret    string
	jwtIssuer    string
	jwtExpHours  int
}

func NewUseCase(
	companyRepo repository.CompanyRepository,
	employeeRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
	jwtSecret, jwtIssuer string,
	jwtExpHours int,
) *UseCase {
	return &UseCase{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		jwtExpHours:  jwtExpHours,
	}
}

// SignupCompany registra una compañía nueva y retorna sesión iniciada.
// Email, teléfono y GST deben ser únicos entre compañías.
func (uc *UseCase) SignupCompany(req *dto.CompanySignupRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := uc.companyRepo.ExistsByUniqueFields(req.Email, req.Phone, req.GST)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		GST:          req.GST,
		PasswordHash: string(hash),
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, company.ID, company.Email, jwt.UserTypeCompany, "", uc.jwtIssuer, uc.jwtExpHours)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:  "Compañía registrada exitosamente",
		Token:    token,
		User:     toCompanyResponse(company),
		UserType: jwt.UserTypeCompany,
	}, nil
}

// LoginCompany autentica una compañía por email y contraseña.
// Email desconocido y contraseña incorrecta retornan el mismo error.
func (uc *UseCase) LoginCompany(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtSecret, company.ID, company.Email, jwt.UserTypeCompany, "", uc.jwtIssuer, uc.jwtExpHours)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:  "Inicio de sesión exitoso",
		Token:    token,
		User:     toCompanyResponse(company),
		UserType: jwt.UserTypeCompany,
	}, nil
}

// LoginEmployee autentica un empleado por email y contraseña.
func (uc *UseCase) LoginEmployee(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	emp, err := uc.employeeRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtSecret, emp.ID, emp.Email, jwt.UserTypeEmployee, emp.CompanyID, uc.jwtIssuer, uc.jwtExpHours)
	if err != nil {
		return nil, err
	}

	role, err := uc.roleRepo.GetByID(emp.RoleID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:  "Inicio de sesión exitoso",
		Token:    token,
		User:     toEmployeeResponse(emp, role),
		UserType: jwt.UserTypeEmployee,
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		GST:       c.GST,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toEmployeeResponse(e *entity.Employee, role *entity.Role) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		CompanyID: e.CompanyID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if role != nil {
		perms := make([]dto.PermissionResponse, 0, len(role.Permissions))
		for _, p := range role.Permissions {
			perms = append(perms, dto.PermissionResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
			})
		}
		resp.Role = &dto.RoleResponse{
			ID:          role.ID,
			CompanyID:   role.CompanyID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: perms,
			CreatedAt:   role.CreatedAt,
			UpdatedAt:   role.UpdatedAt,
		}
	}
	return resp
}
