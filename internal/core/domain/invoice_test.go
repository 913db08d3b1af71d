package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

func TestInvoice_RecalculateTotals(t *testing.T) {
	inv := domain.Invoice{
		Items: []domain.InvoiceItem{
			{Description: "Design", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(50)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(19.99)},
		},
		TaxRate: decimal.NewFromInt(10),
	}

	inv.RecalculateTotals()

	assert.True(t, decimal.NewFromInt(500).Equal(inv.Items[0].Amount))
	assert.True(t, decimal.NewFromFloat(19.99).Equal(inv.Items[1].Amount))
	assert.True(t, decimal.NewFromFloat(519.99).Equal(inv.Subtotal))
	assert.True(t, decimal.NewFromFloat(51.999).Equal(inv.Tax))
	assert.True(t, decimal.NewFromFloat(571.989).Equal(inv.Total))
}

func TestInvoice_RecalculateTotals_NoItems(t *testing.T) {
	inv := domain.Invoice{TaxRate: decimal.NewFromInt(20)}
	inv.RecalculateTotals()

	assert.True(t, inv.Subtotal.IsZero())
	assert.True(t, inv.Tax.IsZero())
	assert.True(t, inv.Total.IsZero())
}

func TestInvoice_RecalculateTotals_ZeroTaxRate(t *testing.T) {
	inv := domain.Invoice{
		Items: []domain.InvoiceItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
		},
	}
	inv.RecalculateTotals()

	assert.True(t, decimal.NewFromInt(200).Equal(inv.Subtotal))
	assert.True(t, inv.Tax.IsZero())
	assert.True(t, decimal.NewFromInt(200).Equal(inv.Total))
}

func TestInvoice_EffectiveStatus(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  domain.InvoiceStatus
		dueDate time.Time
		want    domain.InvoiceStatus
	}{
		{
			name:    "sent past due reads as overdue",
			status:  domain.InvoiceSent,
			dueDate: date(2025, time.July, 1),
			want:    domain.InvoiceOverdue,
		},
		{
			name:    "sent before due stays sent",
			status:  domain.InvoiceSent,
			dueDate: date(2025, time.August, 1),
			want:    domain.InvoiceSent,
		},
		{
			name:    "paid never turns overdue",
			status:  domain.InvoicePaid,
			dueDate: date(2025, time.July, 1),
			want:    domain.InvoicePaid,
		},
		{
			name:    "draft never turns overdue",
			status:  domain.InvoiceDraft,
			dueDate: date(2025, time.July, 1),
			want:    domain.InvoiceDraft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.Invoice{Status: tt.status, DueDate: tt.dueDate}
			assert.Equal(t, tt.want, inv.EffectiveStatus(now))
		})
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-00001", domain.FormatInvoiceNumber(1))
	assert.Equal(t, "INV-00042", domain.FormatInvoiceNumber(42))
	assert.Equal(t, "INV-123456", domain.FormatInvoiceNumber(123456))
}

func TestInvoiceStatus_Valid(t *testing.T) {
	assert.True(t, domain.InvoiceDraft.Valid())
	assert.True(t, domain.InvoiceSent.Valid())
	assert.True(t, domain.InvoicePaid.Valid())
	// Overdue is derived, never stored.
	assert.False(t, domain.InvoiceOverdue.Valid())
}
