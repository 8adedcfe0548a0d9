package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// NotificationRecipient identifica al dueño de una bandeja: una empresa o un
// empleado, según el tipo de principal autenticado.
type NotificationRecipient struct {
	UserID   string
	UserType string // jwt.UserTypeCompany | jwt.UserTypeEmployee
}

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByRecipient devuelve la página y el total para la bandeja del destinatario.
	ListByRecipient(r NotificationRecipient, unreadOnly bool, limit, offset int) ([]*entity.Notification, int, error)
	CountUnread(r NotificationRecipient) (int, error)
	MarkRead(id string) (*entity.Notification, error)
	MarkAllRead(r NotificationRecipient) error
	Delete(id string) error
}
