package entity

import "time"

// Unit es una unidad de medida referenciada por los ítems. El catálogo de
// unidades es global (no pertenece a una empresa); nombre y abreviatura son
// únicos.
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
