package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository. company_id y
// employee_id son NULLables excluyentes: exactamente uno va poblado.
// Metadata se guarda como JSONB.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, company_id, employee_id, title, message, type, priority, metadata, is_read, created_at`

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, company_id, employee_id, title, message, type, priority, metadata, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW())`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, nullIfEmpty(n.CompanyID), nullIfEmpty(n.EmployeeID), n.Title, n.Message, n.Type, n.Priority, n.Metadata,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByRecipient devuelve la página y el total de la bandeja del destinatario,
// más recientes primero.
func (r *NotificationRepo) ListByRecipient(rec repository.NotificationRecipient, unreadOnly bool, limit, offset int) ([]*entity.Notification, int, error) {
	ctx := context.Background()
	where := recipientClause(rec)

	countQuery := `SELECT COUNT(*) FROM notifications WHERE ` + where
	if unreadOnly {
		countQuery += ` AND is_read = FALSE`
	}
	var total int
	if err := r.q.QueryRow(ctx, countQuery, rec.UserID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	listQuery := `SELECT ` + notificationColumns + ` FROM notifications WHERE ` + where
	if unreadOnly {
		listQuery += ` AND is_read = FALSE`
	}
	listQuery += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, listQuery, rec.UserID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, n)
	}
	return list, total, rows.Err()
}

// CountUnread devuelve el número de no leídas del destinatario.
func (r *NotificationRepo) CountUnread(rec repository.NotificationRecipient) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE ` + recipientClause(rec) + ` AND is_read = FALSE`
	var count int
	if err := r.q.QueryRow(context.Background(), query, rec.UserID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marca una notificación como leída y la devuelve.
func (r *NotificationRepo) MarkRead(id string) (*entity.Notification, error) {
	query := `
		UPDATE notifications SET is_read = TRUE WHERE id = $1
		RETURNING ` + notificationColumns
	n, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

// MarkAllRead marca toda la bandeja del destinatario como leída.
func (r *NotificationRepo) MarkAllRead(rec repository.NotificationRecipient) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE ` + recipientClause(rec)
	if _, err := r.q.Exec(context.Background(), query, rec.UserID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Delete elimina una notificación.
func (r *NotificationRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// recipientClause arma el filtro de bandeja según el tipo de destinatario.
func recipientClause(rec repository.NotificationRecipient) string {
	if rec.UserType == jwt.UserTypeCompany {
		return `company_id = $1`
	}
	return `employee_id = $1`
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*entity.Notification, error) {
	var n entity.Notification
	var companyID, employeeID *string
	err := row.Scan(&n.ID, &companyID, &employeeID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.Metadata, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	if companyID != nil {
		n.CompanyID = *companyID
	}
	if employeeID != nil {
		n.EmployeeID = *employeeID
	}
	return &n, nil
}

func (r *NotificationRepo) scanOne(row pgx.Row) (*entity.Notification, error) {
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}
