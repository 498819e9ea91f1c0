package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNotFinite is returned when asked to format NaN or an infinity.
var ErrNotFinite = errors.New("currency: amount is not a finite number")

// Formatter renders an amount as a currency string.
type Formatter interface {
	Format(amount float64) (string, error)
}

// LocaleFormatter formats amounts with CLDR data for a locale and ISO currency.
type LocaleFormatter struct {
	printer *message.Printer
	unit    xcurrency.Unit
}

// NewLocaleFormatter builds a formatter for e.g. ("en-IN", "INR").
func NewLocaleFormatter(locale, code string) (*LocaleFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("currency: invalid locale %q: %w", locale, err)
	}
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency: invalid currency code %q: %w", code, err)
	}
	return &LocaleFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

func (f *LocaleFormatter) Format(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrNotFinite
	}
	out := f.printer.Sprint(xcurrency.NarrowSymbol(f.unit.Amount(amount)))
	return trimSymbolGap(out), nil
}

// trimSymbolGap drops the separator x/text writes between the symbol and
// the number, so "₹ 250.00" renders as "₹250.00" like the fallback.
func trimSymbolGap(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		return s[:i] + s[i+size:]
	}
	return s
}

// Money formats amounts, falling back to "<symbol><amount with 2 decimals>"
// whenever the primary formatter fails.
type Money struct {
	primary  Formatter
	symbol   string
	reporter diagnostics.Reporter
}

// NewMoney creates a Money formatter. A nil primary always uses the fallback.
func NewMoney(primary Formatter, fallbackSymbol string, reporter diagnostics.Reporter) *Money {
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return &Money{
		primary:  primary,
		symbol:   fallbackSymbol,
		reporter: reporter,
	}
}

// Format returns the locale string for amount, or the fixed fallback.
func (m *Money) Format(amount float64) string {
	if m.primary != nil {
		s, err := m.primary.Format(amount)
		if err == nil {
			return s
		}
		m.reporter.Report("currency", err)
	}
	return m.Fallback(amount)
}

// Fallback is the fixed-symbol two-decimal rendering.
func (m *Money) Fallback(amount float64) string {
	return fmt.Sprintf("%s%.2f", m.symbol, amount)
}
