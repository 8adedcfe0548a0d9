package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /invoices/create.
// El total NO se acepta del cliente: siempre lo calcula el servidor.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required"`
	Date          time.Time            `json:"date" validate:"required"`
	CustomerID    string               `json:"customer_id" validate:"required,uuid"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1"`
}

// InvoiceItemRequest línea de factura (ítem, cantidad, precio unitario).
type InvoiceItemRequest struct {
	ItemID   string          `json:"item_id" validate:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateInvoiceRequest patch parcial para PUT /invoices/:id.
// No toca las líneas y NO recalcula el total (comportamiento heredado).
type UpdateInvoiceRequest struct {
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	CustomerID    string     `json:"customer_id,omitempty"`
}

// InvoiceResponse factura con sus líneas.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CompanyID     string                `json:"company_id"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	Date          time.Time             `json:"date"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// InvoiceListResponse listado paginado de cabeceras.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Pagination PageResponse      `json:"pagination"`
}
