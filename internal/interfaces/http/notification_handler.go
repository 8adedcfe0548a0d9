package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/notification"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// NotificationHandler maneja la bandeja de notificaciones del principal
// autenticado (empresa o empleado).
type NotificationHandler struct {
	svc *notification.Service
}

func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// recipient deriva el destinatario de la bandeja desde el principal del token.
func recipient(c *fiber.Ctx) repository.NotificationRecipient {
	p := GetPrincipal(c)
	return repository.NotificationRecipient{UserID: p.ID, UserType: p.Type}
}

// List godoc
// @Summary      Listar notificaciones del principal autenticado
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        unread_only  query  bool  false  "solo no leídas"
// @Param        limit        query  int   false  "tamaño de página"
// @Param        offset       query  int   false  "desplazamiento"
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	unreadOnly := c.QueryBool("unread_only")
	resp, err := h.svc.List(recipient(c), unreadOnly, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UnreadCount GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	resp, err := h.svc.UnreadCount(recipient(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MarkRead PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	resp, err := h.svc.MarkRead(recipient(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MarkAllRead PATCH /notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.svc.MarkAllRead(recipient(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "todas las notificaciones marcadas como leídas"})
}

// Delete DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(recipient(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "notificación eliminada"})
}
