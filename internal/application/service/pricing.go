package service

import (
	"fmt"
	"math"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
)

// Totals is the subtotal/GST/total triple for a line or a whole bill
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

func (t Totals) add(o Totals) Totals {
	return Totals{
		Subtotal: t.Subtotal + o.Subtotal,
		GST:      t.GST + o.GST,
		Total:    t.Total + o.Total,
	}
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func checkItem(item entity.MenuItem, quantity int) error {
	if !validAmount(item.Price) {
		return fmt.Errorf("menu item %q has invalid price %v", item.ID, item.Price)
	}
	if item.OfferPrice != nil && !validAmount(*item.OfferPrice) {
		return fmt.Errorf("menu item %q has invalid offer price %v", item.ID, *item.OfferPrice)
	}
	if !validAmount(item.GSTPercentage) || item.GSTPercentage > 100 {
		return fmt.Errorf("menu item %q has invalid GST percentage %v", item.ID, item.GSTPercentage)
	}
	if quantity <= 0 {
		return fmt.Errorf("menu item %q has non-positive quantity %d", item.ID, quantity)
	}
	return nil
}

// ItemTotal prices one line. GST is charged only when enabled in settings
// and the item carries a non-zero percentage.
func ItemTotal(item entity.MenuItem, quantity int, settings entity.Settings) (Totals, error) {
	if err := checkItem(item, quantity); err != nil {
		return Totals{}, apperror.NewOperationError("calculate item total", err)
	}

	subtotal := item.UnitPrice() * float64(quantity)
	if !settings.GSTEnabled || item.GSTPercentage == 0 {
		return Totals{Subtotal: subtotal, GST: 0, Total: subtotal}, nil
	}

	gst := subtotal * item.GSTPercentage / 100
	return Totals{Subtotal: subtotal, GST: gst, Total: subtotal + gst}, nil
}

// BillTotal folds ItemTotal over lines. An empty slice yields zeros.
func BillTotal(lines []entity.LineItem, settings entity.Settings) (Totals, error) {
	var sum Totals
	for _, line := range lines {
		t, err := ItemTotal(line.MenuItem, line.Quantity, settings)
		if err != nil {
			return Totals{}, err
		}
		sum = sum.add(t)
	}
	return sum, nil
}

// Change is the amount handed back, never negative
func Change(billTotal, received float64) float64 {
	return math.Max(received-billTotal, 0)
}
