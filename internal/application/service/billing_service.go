package service

import (
	"context"
	"log"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
)

// Validation messages shown to the cashier, checked in this order
const (
	MsgEmptyCart        = "Please add items to the bill"
	MsgNoPaymentMethod  = "Please select a payment method"
	MsgNoCashReceived   = "Please enter cash received amount"
	MsgInsufficientCash = "Cash received is less than bill amount"
)

// BillingService composes bills from a cart and serves the bill ledger
type BillingService struct {
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	events       BillEventPublisher
	reporter     diagnostics.Reporter
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	settingsRepo repository.SettingsRepository,
	events BillEventPublisher,
	reporter diagnostics.Reporter,
) *BillingService {
	if events == nil {
		events = NewNoopPublisher()
	}
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return &BillingService{
		billRepo:     billRepo,
		settingsRepo: settingsRepo,
		events:       events,
		reporter:     reporter,
	}
}

// GenerateBillInput represents the input for generating a bill
type GenerateBillInput struct {
	Cart          []entity.LineItem
	PaymentMethod enum.PaymentMethod
	CashReceived  *float64
}

// BillResult is the stored bill plus the change owed to the customer
type BillResult struct {
	Bill   *entity.Bill `json:"bill"`
	Totals Totals       `json:"totals"`
	Change float64      `json:"change"`
}

// GenerateBill validates the cart and payment, prices it with the current
// settings and appends the bill to the ledger. Nothing is stored when
// validation fails.
func (s *BillingService) GenerateBill(ctx context.Context, input *GenerateBillInput) (*BillResult, error) {
	if len(input.Cart) == 0 {
		return nil, apperror.NewBadRequestError(MsgEmptyCart)
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError(MsgNoPaymentMethod)
	}
	cash := input.PaymentMethod == enum.PaymentMethodCash
	if cash && input.CashReceived == nil {
		return nil, apperror.NewBadRequestError(MsgNoCashReceived)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := BillTotal(input.Cart, settings)
	if err != nil {
		return nil, err
	}

	if cash && *input.CashReceived < totals.Total {
		return nil, apperror.NewBadRequestError(MsgInsufficientCash)
	}

	bill := entity.Bill{
		PaymentMethod: input.PaymentMethod,
		Items:         entity.CloneLines(input.Cart),
		BillTotal:     totals.Total,
	}
	if cash {
		received := *input.CashReceived
		bill.CashReceived = &received
	}

	stored, err := s.billRepo.Append(ctx, bill)
	if err != nil {
		return nil, err
	}
	log.Printf("[bills] created bill #%d (%s, %.2f)", stored.BillNumber, stored.PaymentMethod, stored.BillTotal)

	if err := s.events.Publish(ctx, NewBillCreatedEvent(stored)); err != nil {
		s.reporter.Report("bill-events", err)
	}

	result := &BillResult{Bill: stored, Totals: totals}
	if cash {
		result.Change = Change(totals.Total, *input.CashReceived)
	}
	return result, nil
}

// PricedLine is a cart line with its computed totals
type PricedLine struct {
	entity.LineItem
	Totals Totals `json:"totals"`
}

// CartPreview is what the billing screen shows before the bill is generated
type CartPreview struct {
	Lines    []PricedLine    `json:"lines"`
	Totals   Totals          `json:"totals"`
	Change   *float64        `json:"change,omitempty"`
	Settings entity.Settings `json:"settings"`
}

// PreviewCart prices a cart without validating or storing anything
func (s *BillingService) PreviewCart(ctx context.Context, cart []entity.LineItem, cashReceived *float64) (*CartPreview, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	preview := &CartPreview{Lines: make([]PricedLine, 0, len(cart)), Settings: settings}
	for _, line := range cart {
		t, err := ItemTotal(line.MenuItem, line.Quantity, settings)
		if err != nil {
			return nil, err
		}
		preview.Lines = append(preview.Lines, PricedLine{LineItem: line, Totals: t})
		preview.Totals = preview.Totals.add(t)
	}
	if cashReceived != nil {
		change := Change(preview.Totals.Total, *cashReceived)
		preview.Change = &change
	}
	return preview, nil
}

// GetBill retrieves a bill by id
func (s *BillingService) GetBill(ctx context.Context, id string) (*entity.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

// ListBills returns bills most recent first, restricted to [startDate, endDate]
// when both are given
func (s *BillingService) ListBills(ctx context.Context, rng DateRange) ([]entity.Bill, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByRange(bills, rng.Start, rng.End, rng.Location)
}

// PatchBill applies a partial update to a stored bill
func (s *BillingService) PatchBill(ctx context.Context, id string, patch entity.BillPatch) (*entity.Bill, error) {
	if patch.PaymentMethod != nil && !patch.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError(MsgNoPaymentMethod)
	}
	bill, err := s.billRepo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	log.Printf("[bills] patched bill #%d", bill.BillNumber)
	return bill, nil
}
