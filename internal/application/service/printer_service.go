package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	header       entity.ReceiptHeader
	loc          *time.Location
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	settingsRepo repository.SettingsRepository,
	header entity.ReceiptHeader,
	loc *time.Location,
	printerType string,
) *PrinterService {
	if loc == nil {
		loc = time.UTC
	}
	return &PrinterService{
		printer:      p,
		billRepo:     billRepo,
		settingsRepo: settingsRepo,
		header:       header,
		loc:          loc,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != printer.TypeNone && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt to the printer.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:        s.header,
		BillNo:        0,
		Date:          time.Now().In(s.loc).Format("02/01/2006 15:04"),
		PaymentMethod: "TEST",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
	}

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// BuildReceipt composes the receipt for a bill under the given settings
func (s *PrinterService) BuildReceipt(bill *entity.Bill, settings entity.Settings) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:        s.header,
		BillNo:        bill.BillNumber,
		Date:          bill.Date.In(s.loc).Format("02/01/2006 15:04"),
		PaymentMethod: bill.PaymentMethod.String(),
		ShowGST:       settings.GSTEnabled,
		Total:         bill.BillTotal,
	}

	for _, line := range bill.Items {
		t, err := ItemTotal(line.MenuItem, line.Quantity, settings)
		if err != nil {
			return nil, err
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      line.MenuItem.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.MenuItem.UnitPrice(),
			GST:       t.GST,
			Total:     t.Total,
		})
		receipt.SubTotal += t.Subtotal
		receipt.GST += t.GST
	}

	if bill.PaymentMethod == enum.PaymentMethodCash && bill.CashReceived != nil {
		cash := *bill.CashReceived
		receipt.CashReceived = &cash
		receipt.Change = Change(bill.BillTotal, cash)
	}
	return receipt, nil
}

// PrintBillReceipt fetches a bill and prints its receipt.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID string) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.BuildReceipt(bill, settings)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		log.Printf("[printer] error printing bill #%d: %v", bill.BillNumber, err)
		return receipt, apperror.NewOperationError("print receipt", err)
	}
	return receipt, nil
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatReceipt converts a Receipt into ESC/POS bytes. Amounts are plain
// numbers since most printer code pages have no rupee sign.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(printer.Width58mm)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Bill No:", fmt.Sprintf("%d", r.BillNo)).
		KeyValue("Date:", r.Date).
		Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, amount(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-').
		KeyValue("Subtotal:", amount(r.SubTotal))
	if r.ShowGST {
		doc.KeyValue("GST:", amount(r.GST))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", amount(r.Total)).
		SetBold(false).
		KeyValue("Payment:", r.PaymentMethod)

	if r.CashReceived != nil {
		doc.KeyValue("Cash:", amount(*r.CashReceived)).
			KeyValue("Change:", amount(r.Change))
	}

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you! Visit again").
		LineFeed().
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
