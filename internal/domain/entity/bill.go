package entity

import (
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
)

// LineItem is a menu item with a quantity. Used both for cart lines and
// for the item snapshots inside a bill.
type LineItem struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// Clone deep-copies the embedded menu item
func (l LineItem) Clone() LineItem {
	return LineItem{MenuItem: l.MenuItem.Clone(), Quantity: l.Quantity}
}

// CloneLines deep-copies a slice of line items
func CloneLines(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	out := make([]LineItem, len(lines))
	for i, line := range lines {
		out[i] = line.Clone()
	}
	return out
}

// Bill is a finalized sale. Items are snapshots taken at billing time.
type Bill struct {
	ID            string             `json:"id"`
	BillNumber    int                `json:"billNumber"`
	Date          time.Time          `json:"date"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	Items         []LineItem         `json:"items"`
	BillTotal     float64            `json:"billTotal"`
	CashReceived  *float64           `json:"cashReceived,omitempty"`
}

// Clone returns a deep copy of the bill
func (b Bill) Clone() Bill {
	out := b
	out.Items = CloneLines(b.Items)
	if b.CashReceived != nil {
		cash := *b.CashReceived
		out.CashReceived = &cash
	}
	return out
}

// BillPatch is a partial update. Only non-nil fields are applied; id and
// bill number cannot be expressed here.
type BillPatch struct {
	PaymentMethod *enum.PaymentMethod `json:"paymentMethod,omitempty"`
	Items         []LineItem          `json:"items,omitempty"`
	BillTotal     *float64            `json:"billTotal,omitempty"`
	CashReceived  *float64            `json:"cashReceived,omitempty"`
}

// Apply merges the set fields of p into b
func (p BillPatch) Apply(b *Bill) {
	if p.PaymentMethod != nil {
		b.PaymentMethod = *p.PaymentMethod
	}
	if p.Items != nil {
		b.Items = CloneLines(p.Items)
	}
	if p.BillTotal != nil {
		b.BillTotal = *p.BillTotal
	}
	if p.CashReceived != nil {
		cash := *p.CashReceived
		b.CashReceived = &cash
	}
}
