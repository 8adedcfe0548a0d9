package billing

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta una función contra un InvoiceRepository
// transaccional: la cabecera y todas las líneas se confirman o revierten como
// unidad. Ninguna escritura de fn es observable hasta el commit.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// invoiceNotifier emite el aviso de factura creada. Best-effort: la factura ya
// quedó confirmada cuando se invoca.
type invoiceNotifier interface {
	NotifyInvoiceCreated(inv *entity.Invoice, customerName string)
}

// InvoiceLineForPDF línea enriquecida con el nombre del ítem para el render.
type InvoiceLineForPDF struct {
	entity.InvoiceItem
	ItemName string
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		inv *entity.Invoice,
		company *entity.Company,
		customer *entity.Entity,
		lines []InvoiceLineForPDF,
	) ([]byte, error)
}
