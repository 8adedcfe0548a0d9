package entity

import "time"

// Role es un paquete de permisos con nombre, propiedad exclusiva de una
// empresa y asignable a sus empleados. No puede eliminarse mientras algún
// empleado lo referencie (lo garantiza el store, no solo la base de datos).
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Permissions []Permission // asignación vigente (join role_permissions)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PermissionNames devuelve los nombres de los permisos asignados al rol.
func (r *Role) PermissionNames() []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.Name)
	}
	return names
}
