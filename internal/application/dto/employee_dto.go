package dto

import "time"

// CreateEmployeeRequest body para POST /employee/create (solo company).
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty"`
	RoleID   string `json:"role_id" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateEmployeeRequest patch parcial para PUT /employee/:id.
// Los campos vacíos no se tocan.
type UpdateEmployeeRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	RoleID string `json:"role_id,omitempty"`
}

// UpdateEmployeeRoleRequest body para PATCH /employee/:id/role.
type UpdateEmployeeRoleRequest struct {
	RoleID string `json:"role_id" validate:"required,uuid"`
}

// EmployeeResponse empleado en respuestas (sin password). Incluye el rol
// vigente con sus permisos para que el frontend pinte la matriz de accesos.
type EmployeeResponse struct {
	ID        string        `json:"id"`
	CompanyID string        `json:"company_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Role      *RoleResponse `json:"role,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
