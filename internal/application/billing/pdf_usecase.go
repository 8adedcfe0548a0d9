package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	entityRepo  repository.EntityRepository
	itemRepo    repository.ItemRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	entityRepo repository.EntityRepository,
	itemRepo repository.ItemRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		entityRepo:  entityRepo,
		itemRepo:    itemRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera la factura con todos sus datos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece a la empresa del token.
func (uc *PDFUseCase) DownloadInvoicePDF(
	ctx context.Context,
	companyID, invoiceID string,
) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.entityRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	rawLines, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	enriched := make([]InvoiceLineForPDF, 0, len(rawLines))
	for _, l := range rawLines {
		name := "Ítem " + l.ItemID // fallback
		if item, iErr := uc.itemRepo.GetByID(l.ItemID); iErr == nil && item != nil {
			name = item.Name
		}
		enriched = append(enriched, InvoiceLineForPDF{
			InvoiceItem: *l,
			ItemName:    name,
		})
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company, customer, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}

	filename = fmt.Sprintf("factura-%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
