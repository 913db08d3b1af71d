package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored lifecycle state of an invoice. "overdue" is
// deliberately not a stored status: it is derived at read time from the due
// date (see EffectiveStatus), so the two can never disagree.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"

	// InvoiceOverdue only ever appears as an effective (derived) status.
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is a storable invoice status.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceDraft || s == InvoiceSent || s == InvoicePaid
}

// InvoiceItem is a line item embedded in an invoice.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"` // quantity * unitPrice, derived
}

// Invoice bills a client. Subtotal, Tax and Total are derived from the items
// and tax rate and recomputed on every edit, never hand-set.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	ClientID      string          `json:"clientID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Items         []InvoiceItem   `json:"items"`
	Status        InvoiceStatus   `json:"status"`
	CurrencyCode  string          `json:"currencyCode"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	TaxRate       decimal.Decimal `json:"taxRate"` // percent
	Total         decimal.Decimal `json:"total"`

	// Payment details, set when the invoice is marked paid.
	PaidAt       *time.Time       `json:"paidAt"`
	PaidAmount   *decimal.Decimal `json:"paidAmount"`
	PaidCurrency string           `json:"paidCurrency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`

	AuditFields
}

// RecalculateTotals rebuilds each item amount and the derived subtotal, tax
// and total. Called on every item or tax rate edit.
func (inv *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
		subtotal = subtotal.Add(inv.Items[i].Amount)
	}
	inv.Subtotal = subtotal
	inv.Tax = subtotal.Mul(inv.TaxRate).Div(decimal.NewFromInt(100))
	inv.Total = inv.Subtotal.Add(inv.Tax)
}

// EffectiveStatus returns the status for display: a sent invoice past its due
// date reads as overdue.
func (inv Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if inv.Status == InvoiceSent && inv.DueDate.Before(now) {
		return InvoiceOverdue
	}
	return inv.Status
}

// FormatInvoiceNumber renders a sequence value as the display number, e.g.
// sequence 1 -> "INV-00001".
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%05d", seq)
}

// InvoiceStats summarizes invoices by effective status.
type InvoiceStats struct {
	TotalCount       int             `json:"totalCount"`
	DraftCount       int             `json:"draftCount"`
	SentCount        int             `json:"sentCount"`
	PaidCount        int             `json:"paidCount"`
	OverdueCount     int             `json:"overdueCount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"` // sent + overdue totals
	TotalPaid        decimal.Decimal `json:"totalPaid"`
}
