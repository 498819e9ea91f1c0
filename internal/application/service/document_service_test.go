package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	html string
	out  []byte
	err  error
}

func (r *stubRenderer) Render(_ context.Context, html string) ([]byte, error) {
	r.html = html
	return r.out, r.err
}

func printableBill() *entity.Bill {
	b := bill("b1", 7, time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC), enum.PaymentMethodCash, 250,
		line(menuItem("1", "Samosa", 100, 5), 2),
		line(menuItem("2", "Tea <hot>", 20, 0), 2),
	)
	return &b
}

func TestDocumentService_BillHTML(t *testing.T) {
	svc := NewDocumentService("Snacks Bunk", plainMoney(), time.UTC, nil)

	t.Run("gst enabled", func(t *testing.T) {
		html, err := svc.BillHTML(printableBill(), entity.Settings{GSTEnabled: true})
		require.NoError(t, err)

		assert.Contains(t, html, "<h2>Snacks Bunk</h2>")
		assert.Contains(t, html, "Bill No: 7")
		assert.Contains(t, html, "Date: 05/01/2024, 14:30:00")
		assert.Contains(t, html, "<th>GST</th>")
		assert.Contains(t, html, "<td>5%</td>")
		assert.Contains(t, html, "<td>₹210.00</td>")
		assert.Contains(t, html, "Total: ₹250.00")
		assert.Contains(t, html, "Payment Method: CASH")
		assert.Contains(t, html, "Tea &lt;hot&gt;")
	})

	t.Run("gst disabled drops the column", func(t *testing.T) {
		html, err := svc.BillHTML(printableBill(), entity.Settings{GSTEnabled: false})
		require.NoError(t, err)

		assert.NotContains(t, html, "<th>GST</th>")
		assert.Contains(t, html, "<td>₹200.00</td>")
		assert.Contains(t, html, "Total: ₹250.00", "stored total is printed as-is")
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := svc.BillHTML(printableBill(), entity.DefaultSettings())
		require.NoError(t, err)
		b, err := svc.BillHTML(printableBill(), entity.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("malformed line", func(t *testing.T) {
		broken := printableBill()
		broken.Items[0].MenuItem.Price = math.NaN()
		_, err := svc.BillHTML(broken, entity.DefaultSettings())
		assert.Error(t, err)
	})
}

func TestDocumentService_BillPDF(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc := NewDocumentService("Snacks Bunk", plainMoney(), time.UTC, nil)
		_, err := svc.BillPDF(context.Background(), printableBill(), entity.DefaultSettings())
		require.Error(t, err)
		assert.Equal(t, 501, apperror.GetAppError(err).Code)
	})

	t.Run("renders html", func(t *testing.T) {
		renderer := &stubRenderer{out: []byte("%PDF-1.4")}
		svc := NewDocumentService("Snacks Bunk", plainMoney(), time.UTC, renderer)

		out, err := svc.BillPDF(context.Background(), printableBill(), entity.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), out)
		assert.Contains(t, renderer.html, "Bill No: 7")
	})

	t.Run("renderer failure", func(t *testing.T) {
		renderer := &stubRenderer{err: errors.New("chrome crashed")}
		svc := NewDocumentService("Snacks Bunk", plainMoney(), time.UTC, renderer)

		_, err := svc.BillPDF(context.Background(), printableBill(), entity.DefaultSettings())
		require.Error(t, err)
		assert.Equal(t, "Failed to generate bill PDF", apperror.GetAppError(err).Message)
		assert.ErrorIs(t, err, renderer.err)
	})
}
