package repository

import (
	"context"
	"sort"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/sangkips/snacksbunk-pos/pkg/utils"
)

type billRepository struct {
	blob  jsonBlob
	newID func() string
	now   func() time.Time
}

// NewBillRepository creates the bill ledger stored under the bills blob.
// The last issued bill number is kept under billSequence so numbers are
// never reissued even if stored bills are rewritten.
func NewBillRepository(store domainRepo.BlobStore, reporter diagnostics.Reporter) domainRepo.BillRepository {
	return &billRepository{
		blob:  newJSONBlob(store, reporter),
		newID: utils.NewID,
		now:   time.Now,
	}
}

const opSaveBill = "save bill"

func emptyBills() []entity.Bill { return []entity.Bill{} }

func (r *billRepository) load(ctx context.Context) ([]entity.Bill, error) {
	bills, err := loadBlob(ctx, r.blob, domainRepo.KeyBills, emptyBills)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []entity.Bill{}
	}
	return bills, nil
}

func (r *billRepository) loadForWrite(ctx context.Context) ([]entity.Bill, error) {
	bills, err := loadForWrite(ctx, r.blob, domainRepo.KeyBills, opSaveBill, emptyBills)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []entity.Bill{}
	}
	return bills, nil
}

func (r *billRepository) nextNumber(ctx context.Context, bills []entity.Bill) (int, error) {
	highest := 0
	for _, b := range bills {
		if b.BillNumber > highest {
			highest = b.BillNumber
		}
	}

	sequence, err := loadBlob(ctx, r.blob, domainRepo.KeyBillSequence, func() int { return 0 })
	if err != nil {
		return 0, err
	}
	if sequence > highest {
		highest = sequence
	}
	return highest + 1, nil
}

func (r *billRepository) Append(ctx context.Context, bill entity.Bill) (*entity.Bill, error) {
	if len(bill.Items) == 0 {
		return nil, apperror.NewBadRequestError("Bill must contain items")
	}

	bills, err := r.loadForWrite(ctx)
	if err != nil {
		return nil, err
	}
	number, err := r.nextNumber(ctx, bills)
	if err != nil {
		return nil, err
	}

	stored := bill.Clone()
	stored.ID = r.newID()
	stored.BillNumber = number
	stored.Date = r.now().UTC()

	// The sequence goes first: a failed bills write then only skips a number
	if err := r.blob.save(ctx, domainRepo.KeyBillSequence, number); err != nil {
		return nil, err
	}
	bills = append(bills, stored)
	if err := r.blob.save(ctx, domainRepo.KeyBills, bills); err != nil {
		return nil, err
	}

	out := stored.Clone()
	return &out, nil
}

func (r *billRepository) List(ctx context.Context) ([]entity.Bill, error) {
	bills, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bills, func(i, j int) bool {
		if !bills[i].Date.Equal(bills[j].Date) {
			return bills[i].Date.After(bills[j].Date)
		}
		return bills[i].BillNumber > bills[j].BillNumber
	})
	return bills, nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	bills, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			return &bills[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Bill")
}

func (r *billRepository) Patch(ctx context.Context, id string, patch entity.BillPatch) (*entity.Bill, error) {
	bills, err := r.loadForWrite(ctx)
	if err != nil {
		return nil, err
	}

	for i := range bills {
		if bills[i].ID != id {
			continue
		}
		patch.Apply(&bills[i])
		if err := r.blob.save(ctx, domainRepo.KeyBills, bills); err != nil {
			return nil, err
		}
		out := bills[i].Clone()
		return &out, nil
	}
	return nil, apperror.NewNotFoundError("Bill")
}
