package postgres

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// SeedPermissions siembra el catálogo fijo de permisos si la tabla está vacía.
// Idempotente: el insert hace skip de duplicados por nombre, así dos réplicas
// arrancando a la vez no chocan.
func SeedPermissions(repo repository.PermissionRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("contar permisos: %w", err)
	}
	if count > 0 {
		log.Debug().Int("count", count).Msg("Catálogo de permisos ya sembrado")
		return nil
	}

	if err := repo.CreateMany(entity.FixedPermissions); err != nil {
		return fmt.Errorf("sembrar permisos: %w", err)
	}
	log.Info().Int("count", len(entity.FixedPermissions)).Msg("Catálogo de permisos sembrado")
	return nil
}
