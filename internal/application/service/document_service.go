package service

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/currency"
	"github.com/sangkips/snacksbunk-pos/pkg/pdf"
)

var billTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Bill {{.BillNumber}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; margin: 16px; }
.bill-print { max-width: 320px; margin: 0 auto; }
h2 { text-align: center; margin: 0 0 8px; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 2px 4px; }
</style>
</head>
<body>
<div class="bill-print">
<h2>{{.ShopName}}</h2>
<p>Bill No: {{.BillNumber}}</p>
<p>Date: {{.Date}}</p>
<hr>
<table>
<tr>
<th>Item</th>
<th>Qty</th>
<th>Price</th>
{{- if .ShowGST}}
<th>GST</th>
{{- end}}
<th>Total</th>
</tr>
{{- range .Rows}}
<tr>
<td>{{.Name}}</td>
<td>{{.Quantity}}</td>
<td>{{.Price}}</td>
{{- if $.ShowGST}}
<td>{{.GST}}%</td>
{{- end}}
<td>{{.Total}}</td>
</tr>
{{- end}}
</table>
<hr>
<p>Total: {{.Total}}</p>
<p>Payment Method: {{.PaymentMethod}}</p>
</div>
</body>
</html>
`))

type billRow struct {
	Name     string
	Quantity int
	Price    string
	GST      string
	Total    string
}

type billView struct {
	ShopName      string
	BillNumber    int
	Date          string
	ShowGST       bool
	Rows          []billRow
	Total         string
	PaymentMethod string
}

// DocumentService renders printable bills
type DocumentService struct {
	shopName string
	money    *currency.Money
	loc      *time.Location
	renderer pdf.Renderer
}

// NewDocumentService creates a new document service
func NewDocumentService(shopName string, money *currency.Money, loc *time.Location, renderer pdf.Renderer) *DocumentService {
	if loc == nil {
		loc = time.UTC
	}
	return &DocumentService{shopName: shopName, money: money, loc: loc, renderer: renderer}
}

// BillHTML renders the print view. Line totals and the GST column follow
// the settings passed in, while the total line is the stored bill total.
func (s *DocumentService) BillHTML(bill *entity.Bill, settings entity.Settings) (string, error) {
	view := billView{
		ShopName:      s.shopName,
		BillNumber:    bill.BillNumber,
		Date:          bill.Date.In(s.loc).Format("02/01/2006, 15:04:05"),
		ShowGST:       settings.GSTEnabled,
		Rows:          make([]billRow, 0, len(bill.Items)),
		Total:         s.money.Format(bill.BillTotal),
		PaymentMethod: bill.PaymentMethod.String(),
	}

	for _, line := range bill.Items {
		t, err := ItemTotal(line.MenuItem, line.Quantity, settings)
		if err != nil {
			return "", err
		}
		view.Rows = append(view.Rows, billRow{
			Name:     line.MenuItem.Name,
			Quantity: line.Quantity,
			Price:    s.money.Format(line.MenuItem.UnitPrice()),
			GST:      strconv.FormatFloat(line.MenuItem.GSTPercentage, 'f', -1, 64),
			Total:    s.money.Format(t.Total),
		})
	}

	var buf bytes.Buffer
	if err := billTemplate.Execute(&buf, view); err != nil {
		return "", apperror.NewOperationError("generate bill HTML", err)
	}
	return buf.String(), nil
}

// BillPDF renders the print view to PDF
func (s *DocumentService) BillPDF(ctx context.Context, bill *entity.Bill, settings entity.Settings) ([]byte, error) {
	if s.renderer == nil {
		return nil, apperror.NewAppError(http.StatusNotImplemented, "PDF rendering is not configured")
	}
	html, err := s.BillHTML(bill, settings)
	if err != nil {
		return nil, err
	}
	out, err := s.renderer.Render(ctx, html)
	if err != nil {
		return nil, apperror.NewOperationError("generate bill PDF", err)
	}
	return out, nil
}
