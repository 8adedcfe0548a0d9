package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP de roles y del catálogo de permisos.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo de permisos agrupado por categoría
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.PermissionCatalogResponse
// @Router       /roles/permissions [get]
func (h *RoleHandler) Catalog(c *fiber.Ctx) error {
	resp, err := h.uc.Catalog()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Create POST /roles
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /roles
func (h *RoleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /roles/:roleId
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetCompanyID(c), c.Params("roleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /roles/:roleId
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(GetCompanyID(c), c.Params("roleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /roles/:roleId
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("roleId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rol eliminado"})
}
