package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// La reasignación de rol tiene su propio permiso: administrar los datos del
// empleado no alcanza para cambiar lo que el empleado puede hacer.
func TestRouterRoleReassignmentRequiresDedicatedPermission(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*auth.Principal{
		"emp-gestor": {
			ID:          "emp-gestor",
			CompanyID:   "comp-1",
			Type:        jwt.UserTypeEmployee,
			Permissions: []string{entity.PermManageEmployees},
		},
		"emp-roles": {
			ID:          "emp-roles",
			CompanyID:   "comp-1",
			Type:        jwt.UserTypeEmployee,
			Permissions: []string{entity.PermManageEmployeeRoles},
		},
	}}
	app := fiber.New()
	Router(app, RouterDeps{Resolver: resolver, JWTSecret: mwSecret})

	patchRole := func(token string) *http.Response {
		req := httptest.NewRequest(http.MethodPatch, "/employee/emp-x/role", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	// MANAGE_EMPLOYEES solo no pasa la puerta.
	resp := patchRole(employeeToken(t, "emp-gestor", "comp-1"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// MANAGE_EMPLOYEE_ROLES sí la pasa: el handler ya rechaza el cuerpo vacío,
	// señal de que la petición superó la autorización.
	resp = patchRole(employeeToken(t, "emp-roles", "comp-1"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
