package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/storage"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBillRepository(store domainRepo.BlobStore, now time.Time) *billRepository {
	repo := NewBillRepository(store, nil).(*billRepository)
	repo.now = fixedClock(now)
	return repo
}

func sampleBill() entity.Bill {
	return entity.Bill{
		PaymentMethod: enum.PaymentMethodUPI,
		Items:         []entity.LineItem{{MenuItem: entity.MenuItem{ID: "m1", Name: "Tea", Price: 15}, Quantity: 2}},
		BillTotal:     30,
	}
}

func TestBillRepository_AppendAssignsFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := newTestBillRepository(storage.NewMemoryStore(), now)

	input := sampleBill()
	input.ID = "caller-id"
	input.BillNumber = 99
	input.Date = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	bill, err := repo.Append(context.Background(), input)
	require.NoError(t, err)
	assert.NotEqual(t, "caller-id", bill.ID)
	assert.Equal(t, 1, bill.BillNumber)
	assert.True(t, now.Equal(bill.Date))
	assert.Equal(t, 2, bill.Items[0].Quantity)
}

func TestBillRepository_AppendRequiresItems(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := newTestBillRepository(store, time.Now())

	_, err := repo.Append(context.Background(), entity.Bill{PaymentMethod: enum.PaymentMethodCash})
	assert.EqualError(t, err, "Bill must contain items")

	_, ok, _ := store.Get(context.Background(), domainRepo.KeyBills)
	assert.False(t, ok)
}

func TestBillRepository_NumberNeverReused(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := newTestBillRepository(store, time.Now())

	_, err := repo.Append(ctx, sampleBill())
	require.NoError(t, err)
	second, err := repo.Append(ctx, sampleBill())
	require.NoError(t, err)
	require.Equal(t, 2, second.BillNumber)

	// rewrite the stored ledger so the highest remaining number is 1
	bills, err := repo.List(ctx)
	require.NoError(t, err)
	for i := range bills {
		if bills[i].ID == second.ID {
			bills[i].BillNumber = 1
		}
	}
	require.NoError(t, repo.blob.save(ctx, domainRepo.KeyBills, bills))

	third, err := repo.Append(ctx, sampleBill())
	require.NoError(t, err)
	assert.Equal(t, 3, third.BillNumber)
}

func TestBillRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := newTestBillRepository(store, time.Now())

	early := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{early, late, late, early} {
		repo.now = fixedClock(at)
		_, err := repo.Append(ctx, sampleBill())
		require.NoError(t, err)
	}

	bills, err := repo.List(ctx)
	require.NoError(t, err)

	var numbers []int
	for _, b := range bills {
		numbers = append(numbers, b.BillNumber)
	}
	assert.Equal(t, []int{3, 2, 4, 1}, numbers)
}

func TestBillRepository_Patch(t *testing.T) {
	ctx := context.Background()
	repo := newTestBillRepository(storage.NewMemoryStore(), time.Now())

	bill, err := repo.Append(ctx, sampleBill())
	require.NoError(t, err)

	cash := enum.PaymentMethodCash
	received := 50.0
	patched, err := repo.Patch(ctx, bill.ID, entity.BillPatch{PaymentMethod: &cash, CashReceived: &received})
	require.NoError(t, err)
	assert.Equal(t, bill.ID, patched.ID)
	assert.Equal(t, bill.BillNumber, patched.BillNumber)
	assert.Equal(t, enum.PaymentMethodCash, patched.PaymentMethod)
	assert.Equal(t, 50.0, *patched.CashReceived)
	assert.Equal(t, bill.Items, patched.Items)

	stored, err := repo.GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodCash, stored.PaymentMethod)

	_, err = repo.Patch(ctx, "missing", entity.BillPatch{})
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Bill not found", appErr.Message)
}

func TestBillRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newTestBillRepository(storage.NewMemoryStore(), time.Now())

	offer := 10.0
	input := sampleBill()
	input.Items[0].MenuItem.OfferPrice = &offer

	_, err := repo.Append(ctx, input)
	require.NoError(t, err)
	offer = 999

	bills, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *bills[0].Items[0].MenuItem.OfferPrice)
}

func TestBillRepository_WriteFailure(t *testing.T) {
	tests := []struct {
		name        string
		sequenceErr error
		billsErr    error
		wantBills   bool
	}{
		{name: "bills write fails after sequence", billsErr: errors.New("read-only"), wantBills: true},
		{name: "sequence write fails", sequenceErr: errors.New("read-only"), wantBills: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := new(mockBlobStore)
			store.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
			store.On("Set", mock.Anything, domainRepo.KeyBillSequence, "1").Return(testCase.sequenceErr)
			store.On("Set", mock.Anything, domainRepo.KeyBills, mock.Anything).Return(testCase.billsErr)

			repo := newTestBillRepository(store, time.Now())
			_, err := repo.Append(context.Background(), sampleBill())
			assert.True(t, apperror.IsStorageError(err))
			if testCase.wantBills {
				store.AssertCalled(t, "Set", mock.Anything, domainRepo.KeyBills, mock.Anything)
			} else {
				store.AssertNotCalled(t, "Set", mock.Anything, domainRepo.KeyBills, mock.Anything)
			}
		})
	}
}

func TestBillRepository_CorruptLedgerIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	const corrupt = `[{"id":"b1","billNumber":"seven"}]`

	tests := []struct {
		name  string
		write func(repo *billRepository) error
	}{
		{
			name: "append",
			write: func(repo *billRepository) error {
				_, err := repo.Append(ctx, sampleBill())
				return err
			},
		},
		{
			name: "patch",
			write: func(repo *billRepository) error {
				total := 10.0
				_, err := repo.Patch(ctx, "b1", entity.BillPatch{BillTotal: &total})
				return err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(ctx, domainRepo.KeyBills, corrupt))
			repo := newTestBillRepository(store, time.Now())

			err := testCase.write(repo)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusInternalServerError, appErr.Code)
			assert.Equal(t, "Failed to save bill", appErr.Message)

			raw, ok, err := store.Get(ctx, domainRepo.KeyBills)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, corrupt, raw)
			_, ok, _ = store.Get(ctx, domainRepo.KeyBillSequence)
			assert.False(t, ok)

			// reads still recover with an empty ledger
			bills, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, bills)
		})
	}
}
