package dto

import "time"

// NotificationResponse notificación en respuestas y en eventos realtime.
type NotificationResponse struct {
	ID         string         `json:"id"`
	CompanyID  string         `json:"company_id,omitempty"`
	EmployeeID string         `json:"employee_id,omitempty"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Type       string         `json:"type"`
	Priority   string         `json:"priority"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IsRead     bool           `json:"is_read"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NotificationListResponse bandeja paginada.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Pagination    PageResponse           `json:"pagination"`
}

// UnreadCountResponse contador de no leídas.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
