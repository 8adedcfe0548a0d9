package dto

import "time"

// CreateEntityRequest body para POST /entities/create.
type CreateEntityRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Type        string `json:"type" validate:"required,oneof=CUSTOMER BUSINESS"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	CreditTerms string `json:"credit_terms,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateEntityRequest patch parcial para PUT /entities/:id.
type UpdateEntityRequest struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	CreditTerms string `json:"credit_terms,omitempty"`
	Status      string `json:"status,omitempty"`
}

// EntityResponse tercero en respuestas.
type EntityResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreditTerms string    `json:"credit_terms,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
