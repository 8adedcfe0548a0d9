package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// fakeInvoiceStore simula el store con semántica transaccional real: las
// escrituras dentro de una transacción van a un staging que solo se vuelca al
// estado visible en el commit. El índice único de invoice_number se aplica en
// la escritura, como lo haría la base de datos.
type fakeInvoiceStore struct {
	invoices map[string]*entity.Invoice
	lines    map[string][]*entity.InvoiceItem // invoiceID -> líneas

	failCreateItemAt int // falla la N-ésima línea (0 = nunca)
	createItemCalls  int
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{
		invoices: map[string]*entity.Invoice{},
		lines:    map[string][]*entity.InvoiceItem{},
	}
}

// fakeInvoiceTx es la vista transaccional del store.
type fakeInvoiceTx struct {
	store          *fakeInvoiceStore
	stagedInvoices []*entity.Invoice
	stagedLines    []*entity.InvoiceItem
	deletedIDs     []string
	deletedLineIDs []string
}

func (tx *fakeInvoiceTx) Create(inv *entity.Invoice) error {
	for _, existing := range tx.store.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	for _, staged := range tx.stagedInvoices {
		if staged.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	tx.stagedInvoices = append(tx.stagedInvoices, inv)
	return nil
}

func (tx *fakeInvoiceTx) CreateItem(item *entity.InvoiceItem) error {
	tx.store.createItemCalls++
	if tx.store.failCreateItemAt > 0 && tx.store.createItemCalls >= tx.store.failCreateItemAt {
		return errors.New("fallo simulado del store")
	}
	tx.stagedLines = append(tx.stagedLines, item)
	return nil
}

func (tx *fakeInvoiceTx) GetByID(id string) (*entity.Invoice, error) {
	return tx.store.invoices[id], nil
}

func (tx *fakeInvoiceTx) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range tx.store.invoices {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, nil
}

func (tx *fakeInvoiceTx) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return tx.store.lines[invoiceID], nil
}

func (tx *fakeInvoiceTx) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range tx.store.invoices {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (tx *fakeInvoiceTx) Update(inv *entity.Invoice) error {
	tx.store.invoices[inv.ID] = inv
	return nil
}

func (tx *fakeInvoiceTx) Delete(id string) error {
	tx.deletedIDs = append(tx.deletedIDs, id)
	return nil
}

func (tx *fakeInvoiceTx) DeleteItemsByInvoiceID(invoiceID string) error {
	tx.deletedLineIDs = append(tx.deletedLineIDs, invoiceID)
	return nil
}

func (tx *fakeInvoiceTx) commit() {
	for _, inv := range tx.stagedInvoices {
		tx.store.invoices[inv.ID] = inv
	}
	for _, line := range tx.stagedLines {
		tx.store.lines[line.InvoiceID] = append(tx.store.lines[line.InvoiceID], line)
	}
	for _, id := range tx.deletedLineIDs {
		delete(tx.store.lines, id)
	}
	for _, id := range tx.deletedIDs {
		delete(tx.store.invoices, id)
	}
}

// autocommitRepo implementa el puerto fuera de transacción (lecturas y
// escrituras sueltas van directo al estado visible).
type autocommitRepo struct {
	store *fakeInvoiceStore
}

func (r *autocommitRepo) run(fn func(tx *fakeInvoiceTx) error) error {
	tx := &fakeInvoiceTx{store: r.store}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (r *autocommitRepo) Create(inv *entity.Invoice) error {
	return r.run(func(tx *fakeInvoiceTx) error { return tx.Create(inv) })
}
func (r *autocommitRepo) CreateItem(item *entity.InvoiceItem) error {
	return r.run(func(tx *fakeInvoiceTx) error { return tx.CreateItem(item) })
}
func (r *autocommitRepo) GetByID(id string) (*entity.Invoice, error) {
	return (&fakeInvoiceTx{store: r.store}).GetByID(id)
}
func (r *autocommitRepo) GetByNumber(number string) (*entity.Invoice, error) {
	return (&fakeInvoiceTx{store: r.store}).GetByNumber(number)
}
func (r *autocommitRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return (&fakeInvoiceTx{store: r.store}).GetItemsByInvoiceID(invoiceID)
}
func (r *autocommitRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	return (&fakeInvoiceTx{store: r.store}).ListByCompany(companyID, limit, offset)
}
func (r *autocommitRepo) Update(inv *entity.Invoice) error {
	return r.run(func(tx *fakeInvoiceTx) error { return tx.Update(inv) })
}
func (r *autocommitRepo) Delete(id string) error {
	return r.run(func(tx *fakeInvoiceTx) error { return tx.Delete(id) })
}
func (r *autocommitRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	return r.run(func(tx *fakeInvoiceTx) error { return tx.DeleteItemsByInvoiceID(invoiceID) })
}

// fakeTxRunner abre una vista transaccional y hace commit solo si fn no falla.
// beforeRun simula a otro escritor confirmando justo antes de abrir la
// transacción (carrera de numeración).
type fakeTxRunner struct {
	store     *fakeInvoiceStore
	beforeRun func()
}

func (f *fakeTxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	if f.beforeRun != nil {
		f.beforeRun()
	}
	tx := &fakeInvoiceTx{store: f.store}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type fakeEntityRepo struct {
	byID map[string]*entity.Entity
}

func newFakeEntityRepo() *fakeEntityRepo { return &fakeEntityRepo{byID: map[string]*entity.Entity{}} }

func (f *fakeEntityRepo) Create(e *entity.Entity) error { f.byID[e.ID] = e; return nil }
func (f *fakeEntityRepo) GetByID(id string) (*entity.Entity, error) {
	return f.byID[id], nil
}
func (f *fakeEntityRepo) GetByIDAndCompany(id, companyID string) (*entity.Entity, error) {
	e := f.byID[id]
	if e == nil || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}
func (f *fakeEntityRepo) GetByCompanyAndName(companyID, name string) (*entity.Entity, error) {
	for _, e := range f.byID {
		if e.CompanyID == companyID && e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeEntityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Entity, error) {
	return nil, nil
}
func (f *fakeEntityRepo) Update(e *entity.Entity) error { f.byID[e.ID] = e; return nil }
func (f *fakeEntityRepo) Delete(id string) error        { delete(f.byID, id); return nil }

type fakeItemRepo struct {
	byID map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo { return &fakeItemRepo{byID: map[string]*entity.Item{}} }

func (f *fakeItemRepo) Create(i *entity.Item) error { f.byID[i.ID] = i; return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return f.byID[id], nil
}
func (f *fakeItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	i := f.byID[id]
	if i == nil || i.CompanyID != companyID {
		return nil, nil
	}
	return i, nil
}
func (f *fakeItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(i *entity.Item) error { f.byID[i.ID] = i; return nil }
func (f *fakeItemRepo) Delete(id string) error      { delete(f.byID, id); return nil }

type recordedInvoiceNotification struct {
	invoiceID    string
	customerName string
}

type fakeInvoiceNotifier struct {
	sent []recordedInvoiceNotification
}

func (f *fakeInvoiceNotifier) NotifyInvoiceCreated(inv *entity.Invoice, customerName string) {
	f.sent = append(f.sent, recordedInvoiceNotification{invoiceID: inv.ID, customerName: customerName})
}

type invoiceTestEnv struct {
	uc       *InvoiceUseCase
	store    *fakeInvoiceStore
	txRunner *fakeTxRunner
	entities *fakeEntityRepo
	items    *fakeItemRepo
	notifier *fakeInvoiceNotifier

	companyID  string
	customerID string
	itemA      string
	itemB      string
}

func newInvoiceTestEnv() *invoiceTestEnv {
	store := newFakeInvoiceStore()
	entities := newFakeEntityRepo()
	items := newFakeItemRepo()
	notifier := &fakeInvoiceNotifier{}

	env := &invoiceTestEnv{
		store:     store,
		entities:  entities,
		items:     items,
		notifier:  notifier,
		companyID: uuid.New().String(),
	}

	customer := &entity.Entity{
		ID:        uuid.New().String(),
		CompanyID: env.companyID,
		Name:      "Cliente Uno",
		Type:      entity.EntityTypeCustomer,
		Status:    entity.EntityStatusActive,
	}
	entities.Create(customer)
	env.customerID = customer.ID

	itemA := &entity.Item{ID: uuid.New().String(), CompanyID: env.companyID, Name: "Tornillo", SKU: "TOR-01"}
	itemB := &entity.Item{ID: uuid.New().String(), CompanyID: env.companyID, Name: "Tuerca", SKU: "TUE-01"}
	items.Create(itemA)
	items.Create(itemB)
	env.itemA = itemA.ID
	env.itemB = itemB.ID

	env.txRunner = &fakeTxRunner{store: store}
	env.uc = NewInvoiceUseCase(env.txRunner, &autocommitRepo{store: store}, entities, items, notifier)
	return env
}

func (env *invoiceTestEnv) validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "FAC-001",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerID:    env.customerID,
		Items: []dto.InvoiceItemRequest{
			{ItemID: env.itemA, Quantity: decimal.NewFromInt(3), Price: decimal.NewFromFloat(10.50)},
			{ItemID: env.itemB, Quantity: decimal.NewFromInt(2), Price: decimal.NewFromFloat(4.25)},
		},
	}
}

func TestCreateInvoiceComputesTotal(t *testing.T) {
	env := newInvoiceTestEnv()

	resp, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	// 3×10.50 + 2×4.25 = 40.00
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(40)), "total = %s", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.NewFromFloat(31.50)))
	assert.Equal(t, "Cliente Uno", resp.CustomerName)

	// Cabecera y líneas quedaron persistidas.
	assert.Len(t, env.store.invoices, 1)
	assert.Len(t, env.store.lines[resp.ID], 2)

	// Se emitió la notificación de factura creada.
	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, resp.ID, env.notifier.sent[0].invoiceID)
}

func TestCreateInvoiceValidatesBeforeWriting(t *testing.T) {
	env := newInvoiceTestEnv()

	cases := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{"sin número", func(r *dto.CreateInvoiceRequest) { r.InvoiceNumber = "" }},
		{"sin fecha", func(r *dto.CreateInvoiceRequest) { r.Date = time.Time{} }},
		{"sin cliente", func(r *dto.CreateInvoiceRequest) { r.CustomerID = "" }},
		{"sin líneas", func(r *dto.CreateInvoiceRequest) { r.Items = nil }},
		{"cantidad cero", func(r *dto.CreateInvoiceRequest) { r.Items[0].Quantity = decimal.Zero }},
		{"cantidad negativa", func(r *dto.CreateInvoiceRequest) { r.Items[0].Quantity = decimal.NewFromInt(-1) }},
		{"precio cero", func(r *dto.CreateInvoiceRequest) { r.Items[1].Price = decimal.Zero }},
		{"ítem inexistente", func(r *dto.CreateInvoiceRequest) { r.Items[0].ItemID = uuid.New().String() }},
		{"cliente inexistente", func(r *dto.CreateInvoiceRequest) { r.CustomerID = uuid.New().String() }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := env.validRequest()
			tc.mutate(&req)

			_, err := env.uc.Create(context.Background(), env.companyID, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			// Nada escrito.
			assert.Empty(t, env.store.invoices)
			assert.Empty(t, env.store.lines)
		})
	}
}

func TestCreateInvoiceRejectsForeignResources(t *testing.T) {
	env := newInvoiceTestEnv()

	// Cliente de otra empresa.
	foreignCustomer := &entity.Entity{ID: uuid.New().String(), CompanyID: uuid.New().String(), Name: "Ajeno"}
	env.entities.Create(foreignCustomer)
	req := env.validRequest()
	req.CustomerID = foreignCustomer.ID
	_, err := env.uc.Create(context.Background(), env.companyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ítem de otra empresa.
	foreignItem := &entity.Item{ID: uuid.New().String(), CompanyID: uuid.New().String(), Name: "Ajeno"}
	env.items.Create(foreignItem)
	req = env.validRequest()
	req.Items[1].ItemID = foreignItem.ID
	_, err = env.uc.Create(context.Background(), env.companyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, env.store.invoices)
}

func TestCreateInvoiceDuplicateNumber(t *testing.T) {
	env := newInvoiceTestEnv()

	_, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	_, err = env.uc.Create(context.Background(), env.companyID, env.validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, env.store.invoices, 1)
}

// Carrera de numeración: el pre-chequeo no ve nada, pero una factura rival con
// el mismo número se confirma antes de que abra la transacción. El índice
// único del store es el árbitro y la creación perdedora no deja filas.
func TestCreateInvoiceDuplicateNumberConstraintWins(t *testing.T) {
	env := newInvoiceTestEnv()

	var rivalID string
	env.txRunner.beforeRun = func() {
		rival := &entity.Invoice{
			ID:            uuid.New().String(),
			CompanyID:     env.companyID,
			CustomerID:    env.customerID,
			InvoiceNumber: "FAC-001",
		}
		env.store.invoices[rival.ID] = rival
		rivalID = rival.ID
	}

	_, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Solo sobrevive la rival: ni cabecera ni líneas de la perdedora.
	require.Len(t, env.store.invoices, 1)
	assert.NotNil(t, env.store.invoices[rivalID])
	assert.Empty(t, env.store.lines)
	assert.Empty(t, env.notifier.sent)
}

func TestCreateInvoiceRollsBackOnLineFailure(t *testing.T) {
	env := newInvoiceTestEnv()

	// El fallo en la ÚLTIMA línea debe dejar cero filas: ni cabecera ni las
	// líneas anteriores.
	env.store.failCreateItemAt = 2

	_, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.Error(t, err)

	assert.Empty(t, env.store.invoices)
	assert.Empty(t, env.store.lines)
}

func TestCreateInvoiceNotificationFailureDoesNotFail(t *testing.T) {
	env := newInvoiceTestEnv()
	// Sin notifier: la creación no depende de él.
	env.uc = NewInvoiceUseCase(&fakeTxRunner{store: env.store}, &autocommitRepo{store: env.store}, env.entities, env.items, nil)

	resp, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)
	assert.Len(t, env.store.lines[resp.ID], 2)
}

func TestGetInvoiceOwnership(t *testing.T) {
	env := newInvoiceTestEnv()

	resp, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	got, err := env.uc.GetByID(env.companyID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.InvoiceNumber, got.InvoiceNumber)
	require.Len(t, got.Items, 2)

	_, err = env.uc.GetByID(uuid.New().String(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.uc.GetByID(env.companyID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvoiceDoesNotRecomputeTotal(t *testing.T) {
	env := newInvoiceTestEnv()

	created, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	newDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	updated, err := env.uc.Update(env.companyID, created.ID, dto.UpdateInvoiceRequest{
		InvoiceNumber: "FAC-002",
		Date:          &newDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "FAC-002", updated.InvoiceNumber)
	assert.True(t, updated.Date.Equal(newDate))
	// El total no cambia en updates de cabecera.
	assert.True(t, updated.TotalAmount.Equal(created.TotalAmount))
}

func TestDeleteInvoiceRemovesLines(t *testing.T) {
	env := newInvoiceTestEnv()

	created, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	// Otra empresa no puede borrarla.
	assert.ErrorIs(t, env.uc.Delete(context.Background(), uuid.New().String(), created.ID), domain.ErrForbidden)

	require.NoError(t, env.uc.Delete(context.Background(), env.companyID, created.ID))
	assert.Empty(t, env.store.invoices)
	assert.Empty(t, env.store.lines)
}
