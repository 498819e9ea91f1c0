package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = entity.ReceiptHeader{ShopName: "Snacks Bunk", Phone: "98450 00000"}

func TestPrinterService_BuildReceipt(t *testing.T) {
	svc := NewPrinterService(printer.NewMemoryPrinter(), &stubBillRepo{}, nil, testHeader, nil, printer.TypeNone)

	b := printableBill()
	b.CashReceived = floatPtr(300)

	receipt, err := svc.BuildReceipt(b, entity.Settings{GSTEnabled: true})
	require.NoError(t, err)

	assert.Equal(t, 7, receipt.BillNo)
	assert.Equal(t, "05/01/2024 14:30", receipt.Date)
	assert.True(t, receipt.ShowGST)
	require.Len(t, receipt.Items, 2)
	assert.InDelta(t, 240.0, receipt.SubTotal, 1e-9)
	assert.InDelta(t, 10.0, receipt.GST, 1e-9)
	assert.Equal(t, 250.0, receipt.Total)
	require.NotNil(t, receipt.CashReceived)
	assert.Equal(t, 50.0, receipt.Change)
}

func TestPrinterService_PrintBillReceipt(t *testing.T) {
	s := newStores(t)
	stored, err := s.bills.Append(context.Background(), entity.Bill{
		PaymentMethod: enum.PaymentMethodUPI,
		Items:         []entity.LineItem{line(menuItem("1", "Samosa", 100, 5), 1)},
		BillTotal:     105,
	})
	require.NoError(t, err)

	t.Run("prints", func(t *testing.T) {
		mem := printer.NewMemoryPrinter()
		svc := NewPrinterService(mem, s.bills, s.settings, testHeader, nil, "memory")

		receipt, err := svc.PrintBillReceipt(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Nil(t, receipt.CashReceived)

		jobs := mem.Jobs()
		require.Len(t, jobs, 1)
		out := string(jobs[0])
		assert.Contains(t, out, "Snacks Bunk")
		assert.Contains(t, out, "Samosa")
		assert.Contains(t, out, "105.00")
		assert.Contains(t, out, "Thank you! Visit again")
	})

	t.Run("printer error", func(t *testing.T) {
		mem := printer.NewMemoryPrinter()
		mem.Err = errors.New("paper out")
		svc := NewPrinterService(mem, s.bills, s.settings, testHeader, nil, "memory")

		_, err := svc.PrintBillReceipt(context.Background(), stored.ID)
		require.Error(t, err)
		assert.Equal(t, "Failed to print receipt", apperror.GetAppError(err).Message)
	})

	t.Run("unknown bill", func(t *testing.T) {
		svc := NewPrinterService(printer.NewMemoryPrinter(), s.bills, s.settings, testHeader, nil, "memory")
		_, err := svc.PrintBillReceipt(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestPrinterService_Status(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), nil, nil, testHeader, nil, printer.TypeNone)
	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)

	mem := printer.NewMemoryPrinter()
	svc = NewPrinterService(mem, nil, nil, testHeader, nil, printer.TypeNetwork)
	_, err := svc.TestPrint()
	require.NoError(t, err)
	assert.True(t, svc.GetStatus().Configured)
	assert.Len(t, mem.Jobs(), 1)
}

func TestFormatReceipt_HidesGSTWhenDisabled(t *testing.T) {
	receipt := &entity.Receipt{Header: testHeader, BillNo: 1, Total: 20, SubTotal: 20, GST: 0, ShowGST: false}
	assert.NotContains(t, string(FormatReceipt(receipt)), "GST:")

	receipt.ShowGST = true
	assert.Contains(t, string(FormatReceipt(receipt)), "GST:")
}
