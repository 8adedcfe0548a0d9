package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// LocalPrincipal es la key de c.Locals donde queda el principal autenticado.
const LocalPrincipal = "principal"

// principalResolver resuelve claims verificados a un principal con permisos
// vigentes (consulta el store en cada petición).
type principalResolver interface {
	Resolve(ctx context.Context, claims *jwt.Claims) (*auth.Principal, error)
}

// AuthMiddleware valida el Bearer Token y resuelve el principal. Los permisos
// NO salen del token: se leen del store en cada petición, así los cambios de
// rol aplican de inmediato y un empleado eliminado deja de entrar aunque su
// token siga vigente.
func AuthMiddleware(jwtSecret string, resolver principalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		principal, err := resolver.Resolve(c.UserContext(), claims)
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "PRINCIPAL_NOT_FOUND", Message: "la cuenta del token ya no existe"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token no reconocido"})
		}
		if err != nil {
			// Un store caído no es un problema de credenciales.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la sesión"})
		}

		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequirePermission exige el permiso nombrado. La empresa pasa siempre; el
// empleado solo si su rol vigente incluye el permiso. El nombre se valida
// contra el catálogo al registrar la ruta: un typo revienta en el arranque.
func RequirePermission(name string) fiber.Handler {
	if !entity.KnownPermission(name) {
		panic(fmt.Sprintf("permiso desconocido en ruta: %q", name))
	}
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !principal.HasPermission(name) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: fmt.Sprintf("no tienes el permiso %s", name),
			})
		}
		return c.Next()
	}
}

// CompanyOnly exige que el principal sea la cuenta de empresa. Ningún permiso
// de empleado lo suple.
func CompanyOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !principal.IsCompany() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo la cuenta de empresa puede realizar esta operación",
			})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// GetCompanyID devuelve la empresa del principal autenticado.
func GetCompanyID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.CompanyID
	}
	return ""
}
