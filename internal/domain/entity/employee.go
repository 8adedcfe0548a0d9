package entity

import "time"

// Employee representa un empleado de una empresa. Pertenece a exactamente una
// Company y tiene exactamente un Role; sus permisos efectivos se derivan
// SIEMPRE del rol vigente, nunca se cachean más allá de la petición.
type Employee struct {
	ID           string
	CompanyID    string
	RoleID       string // debe pertenecer a la misma empresa (se valida en cada cambio de rol)
	Name         string
	Email        string // único global
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
