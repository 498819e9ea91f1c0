package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/upi"
)

const (
	MsgUPINotConfigured = "UPI payments are not configured"
	MsgNotUPIBill       = "UPI QR code is only available for UPI bills"

	defaultQRSize = 256
)

// PaymentService renders UPI collect QR codes for stored bills
type PaymentService struct {
	billRepo  repository.BillRepository
	vpa       string
	payeeName string
}

// NewPaymentService creates a new payment service
func NewPaymentService(billRepo repository.BillRepository, vpa, payeeName string) *PaymentService {
	return &PaymentService{
		billRepo:  billRepo,
		vpa:       vpa,
		payeeName: payeeName,
	}
}

// Enabled reports whether a payee VPA is configured
func (s *PaymentService) Enabled() bool {
	return s.vpa != ""
}

// BillPayment builds the UPI payment request for a bill
func (s *PaymentService) BillPayment(ctx context.Context, billID string) (*upi.Payment, error) {
	if !s.Enabled() {
		return nil, apperror.NewBadRequestError(MsgUPINotConfigured)
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.PaymentMethod != enum.PaymentMethodUPI {
		return nil, apperror.NewBadRequestError(MsgNotUPIBill)
	}

	return &upi.Payment{
		VPA:       s.vpa,
		PayeeName: s.payeeName,
		Amount:    bill.BillTotal,
		Note:      fmt.Sprintf("Bill %d", bill.BillNumber),
	}, nil
}

// BillQRCode returns a PNG QR code of the bill's UPI payment link
func (s *PaymentService) BillQRCode(ctx context.Context, billID string, size int) ([]byte, error) {
	payment, err := s.BillPayment(ctx, billID)
	if err != nil {
		return nil, err
	}
	if size <= 0 || size > 1024 {
		size = defaultQRSize
	}

	png, err := upi.QRCode(*payment, size)
	if err != nil {
		if errors.Is(err, upi.ErrNoVPA) {
			return nil, apperror.NewBadRequestError(MsgUPINotConfigured)
		}
		return nil, apperror.NewOperationError("generate UPI QR code", err)
	}
	return png, nil
}
