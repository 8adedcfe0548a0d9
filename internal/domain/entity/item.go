package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item es un artículo del catálogo de una empresa. El SKU es único por empresa.
type Item struct {
	ID          string
	CompanyID   string
	UnitID      string
	Name        string
	SKU         string
	Description string
	Quantity    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
