package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz del
// multi-tenant: toda entidad (salvo Permission) se remonta a exactamente una
// empresa, directa o indirectamente.
type Company struct {
	ID           string
	Name         string
	Address      string
	Phone        string    // único
	Email        string    // único
	GST          string    // número de registro fiscal, único
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
