package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentLedger() *stubBillRepo {
	return &stubBillRepo{bills: []entity.Bill{
		bill("upi", 7, day(5, 10), enum.PaymentMethodUPI, 250),
		bill("cash", 8, day(5, 11), enum.PaymentMethodCash, 100),
	}}
}

func TestPaymentService_BillPayment(t *testing.T) {
	svc := NewPaymentService(paymentLedger(), "snacksbunk@upi", "Snacks Bunk")

	payment, err := svc.BillPayment(context.Background(), "upi")
	require.NoError(t, err)

	uri, err := payment.URI()
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?pa=snacksbunk%40upi&pn=Snacks%20Bunk&am=250.00&cu=INR&tn=Bill%207", uri)
}

func TestPaymentService_BillQRCode(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name    string
		vpa     string
		billID  string
		wantErr int
	}{
		{name: "upi bill", vpa: "snacksbunk@upi", billID: "upi"},
		{name: "cash bill", vpa: "snacksbunk@upi", billID: "cash", wantErr: 400},
		{name: "no vpa", vpa: "", billID: "upi", wantErr: 400},
		{name: "unknown bill", vpa: "snacksbunk@upi", billID: "missing", wantErr: 404},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := NewPaymentService(paymentLedger(), testCase.vpa, "Snacks Bunk")
			png, err := svc.BillQRCode(context.Background(), testCase.billID, 0)
			if testCase.wantErr != 0 {
				require.Error(t, err)
				assert.Equal(t, testCase.wantErr, apperror.GetAppError(err).Code)
				return
			}
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestPaymentService_Enabled(t *testing.T) {
	assert.False(t, NewPaymentService(nil, "", "").Enabled())
	assert.True(t, NewPaymentService(nil, "x@upi", "").Enabled())
}
