package request

import (
	"math"
	"strconv"
	"strings"

	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
)

// CartRequest represents the cart sent for a preview
type CartRequest struct {
	Items        []service.CartLineInput `json:"items" binding:"dive"`
	CashReceived *FormValue              `json:"cashReceived"`
}

// CreateBillRequest represents a bill generation request
type CreateBillRequest struct {
	Items         []service.CartLineInput `json:"items" binding:"dive"`
	PaymentMethod string                  `json:"paymentMethod"`
	CashReceived  *FormValue              `json:"cashReceived"`
}

// Method parses the payment method; unknown values yield PaymentMethodNone
func (r CreateBillRequest) Method() enum.PaymentMethod {
	return enum.ParsePaymentMethod(r.PaymentMethod)
}

// ParseCash turns a cash received field into an amount. A missing or blank
// value is not an error and yields nil.
func ParseCash(v *FormValue) (*float64, error) {
	if v == nil || strings.TrimSpace(v.String()) == "" {
		return nil, nil
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "cashReceived", Message: "must be a non-negative number"},
		})
	}
	return &amount, nil
}

// UpdateSettingsRequest represents a settings update
type UpdateSettingsRequest struct {
	GSTEnabled *bool `json:"gstEnabled" binding:"required"`
}

// BillFilterRequest represents bill history query parameters
type BillFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// MenuFilterRequest represents menu listing query parameters
type MenuFilterRequest struct {
	Search string `form:"search"`
}
