package entity

import "time"

// Tipos de Entity (tercero comercial).
const (
	EntityTypeCustomer = "CUSTOMER"
	EntityTypeBusiness = "BUSINESS"
)

// Estados de Entity.
const (
	EntityStatusActive   = "ACTIVE"
	EntityStatusInactive = "INACTIVE"
)

// Entity representa un tercero de la empresa: cliente o proveedor.
// El nombre es único por empresa.
type Entity struct {
	ID          string
	CompanyID   string
	Name        string
	Type        string // CUSTOMER | BUSINESS
	Email       string
	Phone       string
	Address     string
	CreditTerms string // condiciones de crédito pactadas (texto libre, ej. "NET 30")
	Status      string // ACTIVE | INACTIVE
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
