package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Create retorna domain.ErrDuplicate ante violación del índice único de
// invoice_number: bajo concurrencia, la constraint del store es el árbitro,
// no el chequeo de existencia previo.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(invoiceNumber string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	DeleteItemsByInvoiceID(invoiceID string) error
}
