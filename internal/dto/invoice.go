package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/utils"
)

// InvoiceItemRequest is one line item on a create/update request. Amounts are
// derived server-side from quantity and unit price.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateInvoiceRequest defines the data needed to create an invoice. The
// invoice number, subtotal, tax and total are all derived.
type CreateInvoiceRequest struct {
	ClientID     string               `json:"clientID" binding:"required"`
	Items        []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	CurrencyCode string               `json:"currencyCode" binding:"required,len=3"`
	IssueDate    time.Time            `json:"issueDate" binding:"required"`
	DueDate      time.Time            `json:"dueDate" binding:"required"`
	TaxRate      decimal.Decimal      `json:"taxRate"`
}

// UpdateInvoiceRequest edits items, tax rate or dates of a draft/sent
// invoice; totals are recomputed on every edit.
type UpdateInvoiceRequest struct {
	Items     *[]InvoiceItemRequest `json:"items"`
	TaxRate   *decimal.Decimal      `json:"taxRate"`
	IssueDate *time.Time            `json:"issueDate"`
	DueDate   *time.Time            `json:"dueDate"`
}

// UpdateInvoiceStatusRequest moves the stored status forward. "overdue" is
// not an accepted target; it is derived at read time.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid"`
}

// MarkInvoicePaidRequest posts the invoice total as income against the chosen
// account. ConvertedAmount carries the caller-computed amount in the account's
// currency when the invoice is denominated differently.
type MarkInvoicePaidRequest struct {
	AccountID       string           `json:"accountID" binding:"required"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
}

// InvoiceItemResponse mirrors domain.InvoiceItem.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse mirrors domain.Invoice. Status is the effective status,
// derived from the due date at response time.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	ClientID      string                `json:"clientID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Items         []InvoiceItemResponse `json:"items"`
	Status        domain.InvoiceStatus  `json:"status"`
	CurrencyCode  string                `json:"currencyCode"`
	IssueDate     time.Time             `json:"issueDate"`
	DueDate       time.Time             `json:"dueDate"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	TaxRate       decimal.Decimal       `json:"taxRate"`
	Total         decimal.Decimal       `json:"total"`
	TotalDisplay  string                `json:"totalDisplay"`
	PaidAt        *time.Time            `json:"paidAt,omitempty"`
	PaidAmount    *decimal.Decimal      `json:"paidAmount,omitempty"`
	PaidCurrency  string                `json:"paidCurrency,omitempty"`
	ExchangeRate  *decimal.Decimal      `json:"exchangeRate,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice, deriving the effective status
// relative to now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		Items:         items,
		Status:        inv.EffectiveStatus(now),
		CurrencyCode:  inv.CurrencyCode,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		TaxRate:       inv.TaxRate,
		Total:         inv.Total,
		TotalDisplay:  utils.FormatAmount(inv.Total, inv.CurrencyCode),
		PaidAt:        inv.PaidAt,
		PaidAmount:    inv.PaidAmount,
		PaidCurrency:  inv.PaidCurrency,
		ExchangeRate:  inv.ExchangeRate,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice, now time.Time) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i], now)
	}
	return res
}

// InvoiceStatsResponse mirrors domain.InvoiceStats.
type InvoiceStatsResponse struct {
	TotalCount       int             `json:"totalCount"`
	DraftCount       int             `json:"draftCount"`
	SentCount        int             `json:"sentCount"`
	PaidCount        int             `json:"paidCount"`
	OverdueCount     int             `json:"overdueCount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
}
