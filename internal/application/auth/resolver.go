package auth

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// PrincipalResolver convierte los claims verificados de un token en un
// Principal con permisos efectivos. Para empleados consulta el rol vigente en
// el store EN CADA PETICIÓN: un cambio de rol o de permisos aplica de
// inmediato, sin re-login. El costo es una lectura extra por petición
// autorizada; el tradeoff correcto para un RBAC editable por administradores.
type PrincipalResolver struct {
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.RoleRepository
}

// NewPrincipalResolver construye el resolver.
func NewPrincipalResolver(employeeRepo repository.EmployeeRepository, roleRepo repository.RoleRepository) *PrincipalResolver {
	return &PrincipalResolver{employeeRepo: employeeRepo, roleRepo: roleRepo}
}

// Resolve resuelve el principal a partir de claims ya verificados.
// Retorna domain.ErrUserNotFound si el empleado fue eliminado después de
// emitido el token (el token deja de servir aunque no haya blacklist).
func (r *PrincipalResolver) Resolve(ctx context.Context, claims *jwt.Claims) (*Principal, error) {
	switch claims.UserType {
	case jwt.UserTypeCompany:
		return &Principal{
			ID:        claims.UserID,
			Email:     claims.Email,
			CompanyID: claims.UserID,
			Type:      jwt.UserTypeCompany,
		}, nil

	case jwt.UserTypeEmployee:
		emp, err := r.employeeRepo.GetByID(claims.UserID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, domain.ErrUserNotFound
		}
		perms, err := r.roleRepo.GetPermissionNames(emp.RoleID)
		if err != nil {
			return nil, err
		}
		return &Principal{
			ID:          emp.ID,
			Email:       emp.Email,
			CompanyID:   emp.CompanyID,
			Type:        jwt.UserTypeEmployee,
			Permissions: perms,
		}, nil

	default:
		return nil, domain.ErrUnauthorized
	}
}
