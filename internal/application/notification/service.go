package notification

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// EventNewNotification es el evento realtime que reciben los clientes
// conectados cuando llega una notificación a su bandeja.
const EventNewNotification = "new_notification"

// Broadcaster empuja eventos realtime a los clientes conectados. La entrega es
// best-effort: un cliente desconectado simplemente no recibe el evento (la
// notificación persistida sigue en su bandeja).
type Broadcaster interface {
	SendToUser(employeeID, event string, payload any)
	SendToCompany(companyID, event string, payload any)
}

// CreateInput datos para crear una notificación. Exactamente uno de
// CompanyID/EmployeeID debe ir poblado.
type CreateInput struct {
	Title      string
	Message    string
	Type       string
	Priority   string
	CompanyID  string
	EmployeeID string
	Metadata   map[string]any
}

// Service gestiona la bandeja de notificaciones y su difusión realtime.
type Service struct {
	repo        repository.NotificationRepository
	broadcaster Broadcaster
}

// NewService construye el servicio. broadcaster puede ser nil (sin realtime).
func NewService(repo repository.NotificationRepository, broadcaster Broadcaster) *Service {
	return &Service{repo: repo, broadcaster: broadcaster}
}

// CreateAndSend persiste la notificación y luego la difunde al destinatario
// conectado. La persistencia es la fuente de verdad; la difusión no falla la
// operación.
func (s *Service) CreateAndSend(in CreateInput) (*entity.Notification, error) {
	if (in.CompanyID == "") == (in.EmployeeID == "") {
		return nil, domain.ErrInvalidInput
	}
	if in.Priority == "" {
		in.Priority = entity.NotificationPriorityNormal
	}

	n := &entity.Notification{
		ID:         uuid.New().String(),
		CompanyID:  in.CompanyID,
		EmployeeID: in.EmployeeID,
		Title:      in.Title,
		Message:    in.Message,
		Type:       in.Type,
		Priority:   in.Priority,
		Metadata:   in.Metadata,
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		payload := ToResponse(n)
		if n.EmployeeID != "" {
			s.broadcaster.SendToUser(n.EmployeeID, EventNewNotification, payload)
		} else {
			s.broadcaster.SendToCompany(n.CompanyID, EventNewNotification, payload)
		}
	}

	return n, nil
}

// List devuelve la bandeja paginada del destinatario autenticado.
func (s *Service) List(r repository.NotificationRecipient, unreadOnly bool, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()

	items, total, err := s.repo.ListByRecipient(r, unreadOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, *ToResponse(n))
	}
	return &dto.NotificationListResponse{
		Notifications: out,
		Pagination:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// UnreadCount devuelve el número de no leídas del destinatario.
func (s *Service) UnreadCount(r repository.NotificationRecipient) (*dto.UnreadCountResponse, error) {
	count, err := s.repo.CountUnread(r)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkRead marca como leída una notificación del destinatario. Marcar una ya
// leída es idempotente. Una notificación ajena retorna ErrNotFound: la bandeja
// de otro usuario no es observable, ni siquiera su existencia.
func (s *Service) MarkRead(r repository.NotificationRecipient, id string) (*dto.NotificationResponse, error) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil || !owns(r, n) {
		return nil, domain.ErrNotFound
	}

	updated, err := s.repo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(updated), nil
}

// MarkAllRead marca toda la bandeja del destinatario como leída.
func (s *Service) MarkAllRead(r repository.NotificationRecipient) error {
	return s.repo.MarkAllRead(r)
}

// Delete elimina una notificación de la bandeja del destinatario.
func (s *Service) Delete(r repository.NotificationRecipient, id string) error {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil || !owns(r, n) {
		return domain.ErrNotFound
	}
	return s.repo.Delete(id)
}

// NotifyEmployeeAdded crea el aviso para un empleado recién registrado.
// Best-effort: el fallo se registra y se descarta, el alta del empleado ya
// quedó confirmada.
func (s *Service) NotifyEmployeeAdded(employee *entity.Employee, roleName string) {
	_, err := s.CreateAndSend(CreateInput{
		Title:      "Bienvenido al equipo",
		Message:    "Tu cuenta fue creada con el rol " + roleName,
		Type:       entity.NotificationTypeEmployeeAdded,
		Priority:   entity.NotificationPriorityNormal,
		EmployeeID: employee.ID,
		Metadata: map[string]any{
			"company_id": employee.CompanyID,
			"role_name":  roleName,
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("employee_id", employee.ID).Msg("No se pudo crear la notificación de alta de empleado")
	}
}

// NotifyInvoiceCreated crea el aviso de factura nueva para la empresa.
// Best-effort: la factura ya quedó confirmada.
func (s *Service) NotifyInvoiceCreated(inv *entity.Invoice, customerName string) {
	_, err := s.CreateAndSend(CreateInput{
		Title:     "Factura creada",
		Message:   "Se creó la factura " + inv.InvoiceNumber + " para " + customerName,
		Type:      entity.NotificationTypeInvoiceCreated,
		Priority:  entity.NotificationPriorityNormal,
		CompanyID: inv.CompanyID,
		Metadata: map[string]any{
			"invoice_id":     inv.ID,
			"invoice_number": inv.InvoiceNumber,
			"total_amount":   inv.TotalAmount.String(),
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("No se pudo crear la notificación de factura")
	}
}

// ToResponse mapea la entidad al DTO de respuesta/evento.
func ToResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:         n.ID,
		CompanyID:  n.CompanyID,
		EmployeeID: n.EmployeeID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Priority:   n.Priority,
		Metadata:   n.Metadata,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

// owns indica si la notificación pertenece a la bandeja del destinatario.
func owns(r repository.NotificationRecipient, n *entity.Notification) bool {
	switch r.UserType {
	case jwt.UserTypeCompany:
		return n.CompanyID == r.UserID
	case jwt.UserTypeEmployee:
		return n.EmployeeID == r.UserID
	default:
		return false
	}
}
