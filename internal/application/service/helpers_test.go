package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/snacksbunk-pos/internal/infrastructure/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/storage"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/currency"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event BillEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// stubBillRepo serves a fixed ledger, for tests that need exact dates
type stubBillRepo struct {
	bills []entity.Bill
	err   error
}

func (r *stubBillRepo) Append(_ context.Context, bill entity.Bill) (*entity.Bill, error) {
	if r.err != nil {
		return nil, r.err
	}
	bill.BillNumber = len(r.bills) + 1
	r.bills = append(r.bills, bill)
	return &bill, nil
}

func (r *stubBillRepo) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.bills {
		if b.ID == id {
			out := b.Clone()
			return &out, nil
		}
	}
	return nil, apperror.NewNotFoundError("Bill")
}

func (r *stubBillRepo) List(context.Context) ([]entity.Bill, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Bill, len(r.bills))
	copy(out, r.bills)
	return out, nil
}

func (r *stubBillRepo) Patch(context.Context, string, entity.BillPatch) (*entity.Bill, error) {
	return nil, apperror.NewNotFoundError("Bill")
}

type stores struct {
	blob     repository.BlobStore
	menu     repository.MenuRepository
	bills    repository.BillRepository
	settings repository.SettingsRepository
	reporter *diagnostics.Recorder
}

func newStores(t *testing.T) stores {
	t.Helper()
	blob := storage.NewMemoryStore()
	reporter := diagnostics.NewRecorder()
	return stores{
		blob:     blob,
		menu:     infraRepo.NewMenuRepository(blob, reporter),
		bills:    infraRepo.NewBillRepository(blob, reporter),
		settings: infraRepo.NewSettingsRepository(blob, reporter),
		reporter: reporter,
	}
}

func (s stores) withGST(t *testing.T, enabled bool) stores {
	t.Helper()
	require.NoError(t, s.settings.Update(context.Background(), entity.Settings{GSTEnabled: enabled}))
	return s
}

// plainMoney always uses the fixed-symbol fallback, so output is stable
func plainMoney() *currency.Money {
	return currency.NewMoney(nil, "₹", diagnostics.NewRecorder())
}

func floatPtr(v float64) *float64 {
	return &v
}

func menuItem(id, name string, price, gst float64) entity.MenuItem {
	return entity.MenuItem{ID: id, Name: name, Price: price, GSTPercentage: gst}
}

func line(item entity.MenuItem, qty int) entity.LineItem {
	return entity.LineItem{MenuItem: item, Quantity: qty}
}

func bill(id string, number int, date time.Time, method enum.PaymentMethod, total float64, items ...entity.LineItem) entity.Bill {
	return entity.Bill{
		ID:            id,
		BillNumber:    number,
		Date:          date,
		PaymentMethod: method,
		Items:         items,
		BillTotal:     total,
	}
}
