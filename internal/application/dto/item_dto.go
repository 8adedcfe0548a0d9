package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /items/create.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Description string          `json:"description,omitempty"`
	UnitID      string          `json:"unit_id" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
}

// UpdateItemRequest patch parcial para PUT /items/:id.
type UpdateItemRequest struct {
	Name        string           `json:"name,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Description string           `json:"description,omitempty"`
	UnitID      string           `json:"unit_id,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

// ItemResponse ítem de catálogo en respuestas.
type ItemResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	UnitID      string          `json:"unit_id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
