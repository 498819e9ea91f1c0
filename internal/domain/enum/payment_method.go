package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod represents how a bill was settled
type PaymentMethod string

const (
	PaymentMethodNone PaymentMethod = ""
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether p is one of the accepted payment methods
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCash || p == PaymentMethodUPI
}

// ParsePaymentMethod is case-insensitive. Unknown values yield PaymentMethodNone.
func ParsePaymentMethod(s string) PaymentMethod {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CASH":
		return PaymentMethodCash
	case "UPI":
		return PaymentMethodUPI
	}
	return PaymentMethodNone
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON keeps unknown strings as-is so stored data survives a round trip.
func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if parsed := ParsePaymentMethod(str); parsed != PaymentMethodNone {
		*p = parsed
		return nil
	}
	*p = PaymentMethod(str)
	return nil
}
