package dto

import "time"

// CreateRoleRequest body para POST /roles.
type CreateRoleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description" validate:"required"`
	PermissionIDs []string `json:"permission_ids"`
}

// UpdateRoleRequest patch parcial para PUT /roles/:roleId.
// PermissionIDs nil = no tocar la asignación; [] = dejar el rol sin permisos.
type UpdateRoleRequest struct {
	Name          string    `json:"name,omitempty"`
	Description   string    `json:"description,omitempty"`
	PermissionIDs *[]string `json:"permission_ids,omitempty"`
}

// RoleResponse rol con sus permisos vigentes.
type RoleResponse struct {
	ID          string               `json:"id"`
	CompanyID   string               `json:"company_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// PermissionResponse permiso del catálogo.
type PermissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PermissionCatalogResponse catálogo agrupado por categoría para
// GET /roles/permissions.
type PermissionCatalogResponse struct {
	Permissions map[string][]PermissionResponse `json:"permissions"`
}
