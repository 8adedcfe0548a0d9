package entity

import "time"

// Categorías del catálogo de permisos.
const (
	CategoryCompany   = "COMPANY"
	CategoryEmployees = "EMPLOYEES"
	CategoryRoles     = "ROLES"
	CategoryEntities  = "ENTITIES"
	CategoryItems     = "ITEMS"
	CategoryUnits     = "UNITS"
	CategoryInvoices  = "INVOICES"
	CategoryAccounts  = "ACCOUNTS"
	CategoryLedger    = "LEDGER"
	CategoryStock     = "STOCK"
	CategoryReports   = "REPORTS"
)

// Nombres de permiso del catálogo. Las rutas se registran con estas constantes;
// RequirePermission valida el nombre contra el catálogo al construir la ruta,
// así un typo revienta en el arranque y no en tiempo de petición.
const (
	PermViewCompanies  = "VIEW_COMPANIES"
	PermEditCompanies  = "EDIT_COMPANIES"
	PermDeleteCompanies = "DELETE_COMPANIES"

	PermViewEmployees       = "VIEW_EMPLOYEES"
	PermManageEmployees     = "MANAGE_EMPLOYEES"
	PermManageEmployeeRoles = "MANAGE_EMPLOYEE_ROLES"

	PermViewRoles   = "VIEW_ROLES"
	PermManageRoles = "MANAGE_ROLES"

	PermViewEntities   = "VIEW_ENTITIES"
	PermCreateEntities = "CREATE_ENTITIES"
	PermEditEntities   = "EDIT_ENTITIES"
	PermDeleteEntities = "DELETE_ENTITIES"

	PermViewItems   = "VIEW_ITEMS"
	PermCreateItems = "CREATE_ITEMS"
	PermEditItems   = "EDIT_ITEMS"
	PermDeleteItems = "DELETE_ITEMS"

	PermViewUnits   = "VIEW_UNITS"
	PermCreateUnits = "CREATE_UNITS"
	PermEditUnits   = "EDIT_UNITS"
	PermDeleteUnits = "DELETE_UNITS"

	PermViewInvoices   = "VIEW_INVOICES"
	PermCreateInvoices = "CREATE_INVOICES"
	PermEditInvoices   = "EDIT_INVOICES"
	PermDeleteInvoices = "DELETE_INVOICES"

	PermViewAccounts   = "VIEW_ACCOUNTS"
	PermManageAccounts = "MANAGE_ACCOUNTS"

	PermViewLedger   = "VIEW_LEDGER"
	PermManageLedger = "MANAGE_LEDGER"

	PermViewStock   = "VIEW_STOCK"
	PermManageStock = "MANAGE_STOCK"

	PermViewReports     = "VIEW_REPORTS"
	PermGenerateReports = "GENERATE_REPORTS"
)

// Permission es una capacidad nombrada del catálogo. Inmutable: se crea una
// sola vez en el seed y nunca se edita ni se borra en operación normal.
type Permission struct {
	ID          string
	Name        string // único
	Description string
	Category    string
	CreatedAt   time.Time
}

// FixedPermissions es el catálogo fijo que se siembra al arrancar el proceso.
var FixedPermissions = []Permission{
	// COMPANY
	{Name: PermViewCompanies, Description: "View company information", Category: CategoryCompany},
	{Name: PermEditCompanies, Description: "Edit company details", Category: CategoryCompany},
	{Name: PermDeleteCompanies, Description: "Delete companies", Category: CategoryCompany},

	// EMPLOYEES
	{Name: PermViewEmployees, Description: "View employee details", Category: CategoryEmployees},
	{Name: PermManageEmployees, Description: "Add/Edit/Delete employees", Category: CategoryEmployees},
	{Name: PermManageEmployeeRoles, Description: "Reassign employee roles", Category: CategoryEmployees},

	// ROLES
	{Name: PermViewRoles, Description: "View roles and permissions", Category: CategoryRoles},
	{Name: PermManageRoles, Description: "Create, edit, and delete roles", Category: CategoryRoles},

	// ENTITIES
	{Name: PermViewEntities, Description: "View entities", Category: CategoryEntities},
	{Name: PermCreateEntities, Description: "Create new entities", Category: CategoryEntities},
	{Name: PermEditEntities, Description: "Edit existing entities", Category: CategoryEntities},
	{Name: PermDeleteEntities, Description: "Delete entities", Category: CategoryEntities},

	// ITEMS
	{Name: PermViewItems, Description: "View items", Category: CategoryItems},
	{Name: PermCreateItems, Description: "Create new items", Category: CategoryItems},
	{Name: PermEditItems, Description: "Edit existing items", Category: CategoryItems},
	{Name: PermDeleteItems, Description: "Delete items", Category: CategoryItems},

	// UNITS
	{Name: PermViewUnits, Description: "View units", Category: CategoryUnits},
	{Name: PermCreateUnits, Description: "Create new units", Category: CategoryUnits},
	{Name: PermEditUnits, Description: "Edit existing units", Category: CategoryUnits},
	{Name: PermDeleteUnits, Description: "Delete units", Category: CategoryUnits},

	// INVOICES
	{Name: PermViewInvoices, Description: "View invoices", Category: CategoryInvoices},
	{Name: PermCreateInvoices, Description: "Create new invoices", Category: CategoryInvoices},
	{Name: PermEditInvoices, Description: "Edit existing invoices", Category: CategoryInvoices},
	{Name: PermDeleteInvoices, Description: "Delete invoices", Category: CategoryInvoices},

	// ACCOUNTS
	{Name: PermViewAccounts, Description: "View accounts", Category: CategoryAccounts},
	{Name: PermManageAccounts, Description: "Manage accounts", Category: CategoryAccounts},

	// LEDGER
	{Name: PermViewLedger, Description: "View ledger", Category: CategoryLedger},
	{Name: PermManageLedger, Description: "Manage ledger entries", Category: CategoryLedger},

	// STOCK
	{Name: PermViewStock, Description: "View stock information", Category: CategoryStock},
	{Name: PermManageStock, Description: "Manage stock levels", Category: CategoryStock},

	// REPORTS
	{Name: PermViewReports, Description: "View reports", Category: CategoryReports},
	{Name: PermGenerateReports, Description: "Generate new reports", Category: CategoryReports},
}

var fixedPermissionNames = buildPermissionNameSet()

func buildPermissionNameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(FixedPermissions))
	for _, p := range FixedPermissions {
		set[p.Name] = struct{}{}
	}
	return set
}

// KnownPermission indica si name pertenece al catálogo fijo.
func KnownPermission(name string) bool {
	_, ok := fixedPermissionNames[name]
	return ok
}

// AllPermissionNames devuelve los nombres del catálogo completo, en el orden
// del catálogo.
func AllPermissionNames() []string {
	names := make([]string, 0, len(FixedPermissions))
	for _, p := range FixedPermissions {
		names = append(names, p.Name)
	}
	return names
}
