package upi

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ErrNoVPA is returned when no payee address is configured
var ErrNoVPA = errors.New("upi: payee VPA is not configured")

// Payment is a UPI collect request shown to the customer as a QR code
type Payment struct {
	VPA       string
	PayeeName string
	Amount    float64
	Note      string
}

// URI renders the upi://pay deep link. Parameter order is pa, pn, am, cu, tn.
func (p Payment) URI() (string, error) {
	if strings.TrimSpace(p.VPA) == "" {
		return "", ErrNoVPA
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount < 0 {
		return "", fmt.Errorf("upi: invalid amount %v", p.Amount)
	}

	var b strings.Builder
	b.WriteString("upi://pay?pa=")
	b.WriteString(escape(p.VPA))
	if p.PayeeName != "" {
		b.WriteString("&pn=")
		b.WriteString(escape(p.PayeeName))
	}
	b.WriteString(fmt.Sprintf("&am=%.2f&cu=INR", p.Amount))
	if p.Note != "" {
		b.WriteString("&tn=")
		b.WriteString(escape(p.Note))
	}
	return b.String(), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// QRCode encodes the payment URI as a PNG of size×size pixels
func QRCode(p Payment, size int) ([]byte, error) {
	uri, err := p.URI()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(uri, qrcode.Medium, size)
}
