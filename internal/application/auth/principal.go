package auth

import "github.com/jhoicas/Gestion-api/pkg/jwt"

// Principal es el actor autenticado ya resuelto: una empresa (superusuario
// implícito del tenant) o un empleado con el conjunto de permisos efectivo de
// su rol vigente. Todas las puertas de autorización deciden según Type.
type Principal struct {
	ID          string
	Email       string
	CompanyID   string   // para company es su propio ID; para employee la empresa dueña
	Type        string   // jwt.UserTypeCompany | jwt.UserTypeEmployee
	Permissions []string // solo employee; company no necesita lista
}

// IsCompany indica si el principal es la cuenta de la empresa.
func (p *Principal) IsCompany() bool {
	return p.Type == jwt.UserTypeCompany
}

// HasPermission indica si el principal puede ejercer el permiso. Una empresa
// pasa siempre (conjunto universal); un empleado solo si su rol vigente lo
// incluye.
func (p *Principal) HasPermission(name string) bool {
	if p.IsCompany() {
		return true
	}
	for _, perm := range p.Permissions {
		if perm == name {
			return true
		}
	}
	return false
}
