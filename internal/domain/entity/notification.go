package entity

import "time"

// Tipos de notificación generados por eventos de dominio.
const (
	NotificationTypeEmployeeAdded  = "EMPLOYEE_ADDED"
	NotificationTypeInvoiceCreated = "INVOICE_CREATED"
)

// Prioridades de notificación.
const (
	NotificationPriorityLow    = "LOW"
	NotificationPriorityNormal = "NORMAL"
	NotificationPriorityHigh   = "HIGH"
)

// Notification es un aviso dirigido a una empresa o a un empleado (exactamente
// uno de CompanyID/EmployeeID va poblado). Se crea por eventos de dominio, solo
// muta en la transición unread → read y solo la borra su dueño.
type Notification struct {
	ID         string
	CompanyID  string // destinatario empresa ("" si el destinatario es un empleado)
	EmployeeID string // destinatario empleado ("" si el destinatario es la empresa)
	Title      string
	Message    string
	Type       string // ver constantes NotificationType*
	Priority   string // LOW | NORMAL | HIGH
	Metadata   map[string]any
	IsRead     bool
	CreatedAt  time.Time
}
