package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedPermissionsCatalogSanity(t *testing.T) {
	assert.NotEmpty(t, FixedPermissions)

	seen := make(map[string]struct{}, len(FixedPermissions))
	for _, p := range FixedPermissions {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description, "permiso %s sin descripción", p.Name)
		assert.NotEmpty(t, p.Category, "permiso %s sin categoría", p.Name)

		_, dup := seen[p.Name]
		assert.False(t, dup, "permiso duplicado en el catálogo: %s", p.Name)
		seen[p.Name] = struct{}{}
	}
}

func TestKnownPermission(t *testing.T) {
	for _, p := range FixedPermissions {
		assert.True(t, KnownPermission(p.Name))
	}
	assert.False(t, KnownPermission("PERMISO_INVENTADO"))
	assert.False(t, KnownPermission(""))
	// Case-sensitive: los nombres del catálogo van en mayúsculas.
	assert.False(t, KnownPermission("view_items"))
}

func TestAllPermissionNamesCoversCatalog(t *testing.T) {
	names := AllPermissionNames()
	assert.Len(t, names, len(FixedPermissions))
	for _, name := range names {
		assert.True(t, KnownPermission(name))
	}
}
