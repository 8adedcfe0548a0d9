package dto

import "time"

// CompanySignupRequest body para POST /auth/signup/company.
type CompanySignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GST      string `json:"gst" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// CompanyResponse empresa en respuestas (sin password).
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	GST       string    `json:"gst"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
