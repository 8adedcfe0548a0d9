package dto

import "time"

// CreateUnitRequest body para POST /units/create.
type CreateUnitRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation" validate:"required,min=1,max=20"`
}

// UpdateUnitRequest patch parcial para PUT /units/:id.
type UpdateUnitRequest struct {
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// UnitResponse unidad de medida en respuestas.
type UnitResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
