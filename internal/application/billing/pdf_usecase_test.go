package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.byID[id], nil
}
func (f *fakeCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	for _, c := range f.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) ExistsByUniqueFields(email, phone, gst string) (bool, error) {
	return false, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.byID[c.ID] = c; return nil }

// fakePDFGenerator registra lo que recibe y devuelve bytes fijos.
type fakePDFGenerator struct {
	lines []InvoiceLineForPDF
}

func (f *fakePDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	company *entity.Company,
	customer *entity.Entity,
	lines []InvoiceLineForPDF,
) ([]byte, error) {
	f.lines = lines
	return []byte("%PDF-fake"), nil
}

type pdfTestEnv struct {
	env       *invoiceTestEnv
	companies *fakeCompanyRepo
	generator *fakePDFGenerator
	uc        *PDFUseCase
}

func newPDFTestEnv(t *testing.T) (*pdfTestEnv, string) {
	t.Helper()
	env := newInvoiceTestEnv()
	companies := newFakeCompanyRepo()
	companies.Create(&entity.Company{ID: env.companyID, Name: "Empresa Uno", GST: "GST-001"})

	resp, err := env.uc.Create(context.Background(), env.companyID, env.validRequest())
	require.NoError(t, err)

	generator := &fakePDFGenerator{}
	uc := NewPDFUseCase(&autocommitRepo{store: env.store}, companies, env.entities, env.items, generator)
	return &pdfTestEnv{env: env, companies: companies, generator: generator, uc: uc}, resp.ID
}

func TestDownloadInvoicePDF(t *testing.T) {
	p, invoiceID := newPDFTestEnv(t)

	pdfBytes, filename, err := p.uc.DownloadInvoicePDF(context.Background(), p.env.companyID, invoiceID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "factura-FAC-001.pdf", filename)

	// Las líneas llegan al generador con el nombre del ítem resuelto.
	require.Len(t, p.generator.lines, 2)
	assert.Equal(t, "Tornillo", p.generator.lines[0].ItemName)
}

func TestDownloadInvoicePDFUnknownInvoice(t *testing.T) {
	p, _ := newPDFTestEnv(t)

	_, _, err := p.uc.DownloadInvoicePDF(context.Background(), p.env.companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadInvoicePDFForeignCompany(t *testing.T) {
	p, invoiceID := newPDFTestEnv(t)

	_, _, err := p.uc.DownloadInvoicePDF(context.Background(), "otra-empresa", invoiceID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un registro relacionado ausente (cliente borrado entre la factura y la
// descarga) responde not-found limpio, no un error interno malformado.
func TestDownloadInvoicePDFMissingCustomer(t *testing.T) {
	p, invoiceID := newPDFTestEnv(t)
	p.env.entities.Delete(p.env.customerID)

	_, _, err := p.uc.DownloadInvoicePDF(context.Background(), p.env.companyID, invoiceID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, err.Error(), "%!w")
}
