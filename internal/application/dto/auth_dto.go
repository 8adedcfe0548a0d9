package dto

// LoginRequest entrada para login de empresa o empleado.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de signup/login: token de sesión (4 días) más el
// usuario autenticado. User es CompanyResponse o EmployeeResponse según
// user_type.
type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	User     any    `json:"user"`
	UserType string `json:"user_type"` // "company" | "employee"
}
