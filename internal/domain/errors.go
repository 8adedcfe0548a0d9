package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	// ErrInvalidCredentials cubre tanto email desconocido como password incorrecto:
	// el caller no puede distinguirlos (evita enumeración de cuentas).
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	// ErrRoleInUse: un rol no puede eliminarse mientras tenga empleados asignados.
	ErrRoleInUse = errors.New("el rol tiene empleados asignados")
)
