package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. Pertenece exclusivamente a
// una Invoice; el ítem referenciado debe ser de la misma empresa que la
// factura. Quantity y Price deben ser > 0.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ItemID    string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

// Subtotal devuelve quantity × price de la línea.
func (i *InvoiceItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}
