package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura. El número es único GLOBAL
// (no por empresa) y TotalAmount es un valor derivado calculado por el
// servidor: en el momento de la creación siempre equivale a
// Σ(quantity × price) sobre sus líneas. Nunca lo aporta el cliente.
type Invoice struct {
	ID            string
	CompanyID     string
	CustomerID    string // Entity de tipo CUSTOMER/BUSINESS, misma empresa
	InvoiceNumber string
	Date          time.Time
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
