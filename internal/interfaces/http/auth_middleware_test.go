package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

const mwSecret = "secreto-middleware"

// fakeResolver devuelve principals precargados por UserID, igual que el
// resolver real pero sin store: permite simular cuentas borradas y cambios
// de permisos entre peticiones.
type fakeResolver struct {
	principals map[string]*auth.Principal
	failWith   error // simula un store inaccesible
}

func (f *fakeResolver) Resolve(_ context.Context, claims *jwt.Claims) (*auth.Principal, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.principals[claims.UserID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

func newTestApp(resolver *fakeResolver, handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{AuthMiddleware(mwSecret, resolver)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/protegida", chain...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body dto.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

func companyToken(t *testing.T, companyID string) string {
	t.Helper()
	token, err := jwt.Generate(mwSecret, companyID, "empresa@test.com", jwt.UserTypeCompany, "", "gestion-pro", 96)
	require.NoError(t, err)
	return token
}

func employeeToken(t *testing.T, employeeID, companyID string) string {
	t.Helper()
	token, err := jwt.Generate(mwSecret, employeeID, "empleado@test.com", jwt.UserTypeEmployee, companyID, "gestion-pro", 96)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := newTestApp(&fakeResolver{principals: map[string]*auth.Principal{}})

	resp, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newTestApp(&fakeResolver{principals: map[string]*auth.Principal{}})

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newTestApp(&fakeResolver{principals: map[string]*auth.Principal{}})

	expired, err := jwt.Generate(mwSecret, "comp-1", "empresa@test.com", jwt.UserTypeCompany, "", "gestion-pro", -1)
	require.NoError(t, err)

	resp, body := doRequest(t, app, expired)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := newTestApp(&fakeResolver{principals: map[string]*auth.Principal{}})

	forged, err := jwt.Generate("otro-secreto", "comp-1", "empresa@test.com", jwt.UserTypeCompany, "", "gestion-pro", 96)
	require.NoError(t, err)

	resp, body := doRequest(t, app, forged)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

// Un token válido de una cuenta que ya no existe (empleado eliminado) no entra:
// el resolver consulta el estado vigente, no el token.
func TestAuthMiddlewareDeletedAccount(t *testing.T) {
	app := newTestApp(&fakeResolver{principals: map[string]*auth.Principal{}})

	resp, body := doRequest(t, app, employeeToken(t, "emp-borrado", "comp-1"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "PRINCIPAL_NOT_FOUND", body.Code)
}

// Un store caído durante la resolución no es un problema de credenciales:
// responde 500, no 401.
func TestAuthMiddlewareResolverOutage(t *testing.T) {
	resolver := &fakeResolver{failWith: errors.New("conexión rechazada")}
	app := newTestApp(resolver)

	resp, body := doRequest(t, app, companyToken(t, "comp-1"))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body.Code)
}

func TestRequirePermissionCompanyAlwaysPasses(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*auth.Principal{
		"comp-1": {ID: "comp-1", CompanyID: "comp-1", Type: jwt.UserTypeCompany},
	}}
	app := newTestApp(resolver, RequirePermission(entity.PermManageRoles))

	resp, _ := doRequest(t, app, companyToken(t, "comp-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionEmployeeHit(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*auth.Principal{
		"emp-1": {
			ID:          "emp-1",
			CompanyID:   "comp-1",
			Type:        jwt.UserTypeEmployee,
			Permissions: []string{entity.PermViewItems, entity.PermCreateItems},
		},
	}}
	app := newTestApp(resolver, RequirePermission(entity.PermCreateItems))

	resp, _ := doRequest(t, app, employeeToken(t, "emp-1", "comp-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionEmployeeMiss(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*auth.Principal{
		"emp-1": {
			ID:          "emp-1",
			CompanyID:   "comp-1",
			Type:        jwt.UserTypeEmployee,
			Permissions: []string{entity.PermViewItems},
		},
	}}
	app := newTestApp(resolver, RequirePermission(entity.PermDeleteItems))

	resp, body := doRequest(t, app, employeeToken(t, "emp-1", "comp-1"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body.Code)
	// El mensaje nombra el permiso que faltó.
	assert.Contains(t, body.Message, entity.PermDeleteItems)
}

// El mismo token ve permisos nuevos en la siguiente petición: la resolución
// es por petición, no por sesión.
func TestRequirePermissionFreshResolution(t *testing.T) {
	principal := &auth.Principal{
		ID:          "emp-1",
		CompanyID:   "comp-1",
		Type:        jwt.UserTypeEmployee,
		Permissions: []string{entity.PermViewItems},
	}
	resolver := &fakeResolver{principals: map[string]*auth.Principal{"emp-1": principal}}
	app := newTestApp(resolver, RequirePermission(entity.PermDeleteItems))
	token := employeeToken(t, "emp-1", "comp-1")

	resp, _ := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// El rol del empleado gana el permiso; mismo token, nueva petición.
	principal.Permissions = append(principal.Permissions, entity.PermDeleteItems)

	resp, _ = doRequest(t, app, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCompanyOnlyBlocksEmployee(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*auth.Principal{
		"comp-1": {ID: "comp-1", CompanyID: "comp-1", Type: jwt.UserTypeCompany},
		"emp-1": {
			ID:          "emp-1",
			CompanyID:   "comp-1",
			Type:        jwt.UserTypeEmployee,
			Permissions: entity.AllPermissionNames(),
		},
	}}
	app := newTestApp(resolver, CompanyOnly())

	resp, _ := doRequest(t, app, companyToken(t, "comp-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Ni siquiera el catálogo completo de permisos suple la cuenta de empresa.
	resp, body := doRequest(t, app, employeeToken(t, "emp-1", "comp-1"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestRequirePermissionUnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		RequirePermission("PERMISO_INVENTADO")
	})
}
