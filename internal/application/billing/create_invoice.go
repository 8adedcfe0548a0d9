package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InvoiceUseCase crea, consulta y administra facturas. La creación valida todo
// antes de escribir y persiste cabecera y líneas en una sola transacción.
type InvoiceUseCase struct {
	txRunner    InvoiceTxRunner
	invoiceRepo repository.InvoiceRepository
	entityRepo  repository.EntityRepository
	itemRepo    repository.ItemRepository
	notifier    invoiceNotifier
}

// NewInvoiceUseCase construye el caso de uso. notifier puede ser nil.
func NewInvoiceUseCase(
	txRunner InvoiceTxRunner,
	invoiceRepo repository.InvoiceRepository,
	entityRepo repository.EntityRepository,
	itemRepo repository.ItemRepository,
	notifier invoiceNotifier,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		entityRepo:  entityRepo,
		itemRepo:    itemRepo,
		notifier:    notifier,
	}
}

// Create crea una factura con sus líneas. Valida TODO antes de escribir: si
// cualquier validación falla no se persiste nada. El total lo calcula el
// servidor como Σ(quantity × price); el valor que mande el cliente se ignora.
//
// El chequeo previo del número es cortesía para el caso común; bajo
// concurrencia el árbitro es la constraint única del store, que el repo
// traduce a domain.ErrDuplicate.
func (uc *InvoiceUseCase) Create(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.InvoiceNumber == "" {
		return nil, fmt.Errorf("%w: invoice_number es obligatorio", domain.ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date es obligatorio", domain.ErrInvalidInput)
	}
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id es obligatorio", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la factura debe tener al menos una línea", domain.ErrInvalidInput)
	}

	// Chequeo previo del número (el índice único decide bajo concurrencia).
	existing, err := uc.invoiceRepo.GetByNumber(in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	customer, err := uc.entityRepo.GetByIDAndCompany(in.CustomerID, companyID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: el cliente no existe o no pertenece a tu empresa", domain.ErrInvalidInput)
	}

	total := decimal.Zero
	for i := range in.Items {
		line := &in.Items[i]
		if line.ItemID == "" {
			return nil, fmt.Errorf("%w: cada línea debe referenciar un ítem", domain.ErrInvalidInput)
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
		if !line.Price.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
		}
		item, err := uc.itemRepo.GetByIDAndCompany(line.ItemID, companyID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: el ítem no existe o no pertenece a tu empresa", domain.ErrInvalidInput)
		}
		total = total.Add(line.Quantity.Mul(line.Price))
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerID:    in.CustomerID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
		TotalAmount:   total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	lines := make([]*entity.InvoiceItem, 0, len(in.Items))
	for _, l := range in.Items {
		lines = append(lines, &entity.InvoiceItem{
			ID:        uuid.New().String(),
			InvoiceID: invoice.ID,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, line := range lines {
			if err := invoiceRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyInvoiceCreated(invoice, customer.Name)
	}

	return toInvoiceResponse(invoice, lines, customer.Name), nil
}

// GetByID obtiene una factura con sus líneas. Una factura de otra empresa
// retorna ErrForbidden.
func (uc *InvoiceUseCase) GetByID(companyID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	lines, err := uc.invoiceRepo.GetItemsByInvoiceID(invoice.ID)
	if err != nil {
		return nil, err
	}

	customerName := ""
	if customer, err := uc.entityRepo.GetByID(invoice.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(invoice, lines, customerName), nil
}

// List lista las cabeceras de factura de la empresa con paginación.
func (uc *InvoiceUseCase) List(companyID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv, nil, ""))
	}
	return &dto.InvoiceListResponse{
		Invoices:   out,
		Pagination: dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}

// Update actualiza campos de la cabecera. No toca las líneas ni recalcula el
// total. Si cambia el número, el nuevo debe seguir siendo único.
func (uc *InvoiceUseCase) Update(companyID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	if in.InvoiceNumber != "" && in.InvoiceNumber != invoice.InvoiceNumber {
		existing, err := uc.invoiceRepo.GetByNumber(in.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		invoice.InvoiceNumber = in.InvoiceNumber
	}
	if in.Date != nil {
		invoice.Date = *in.Date
	}
	if in.CustomerID != "" && in.CustomerID != invoice.CustomerID {
		customer, err := uc.entityRepo.GetByIDAndCompany(in.CustomerID, companyID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: el cliente no existe o no pertenece a tu empresa", domain.ErrInvalidInput)
		}
		invoice.CustomerID = in.CustomerID
	}

	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return uc.GetByID(companyID, invoice.ID)
}

// Delete elimina la factura y sus líneas en una transacción.
func (uc *InvoiceUseCase) Delete(ctx context.Context, companyID, id string) error {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return domain.ErrForbidden
	}

	return uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.DeleteItemsByInvoiceID(invoice.ID); err != nil {
			return err
		}
		return invoiceRepo.Delete(invoice.ID)
	})
}

func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceItem, customerName string) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.InvoiceItemResponse{
			ID:       l.ID,
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Price:    l.Price,
			Subtotal: l.Subtotal(),
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		CustomerID:    inv.CustomerID,
		CustomerName:  customerName,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		TotalAmount:   inv.TotalAmount,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
