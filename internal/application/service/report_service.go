package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/currency"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/sangkips/snacksbunk-pos/pkg/objectstore"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var (
	BillHistoryHeaders  = []string{"Bill No", "Date", "Items", "Payment Method", "Total Amount"}
	CashRegisterHeaders = []string{"Date", "Cash Amount", "UPI Amount", "Total Amount"}
)

// DateRange is an inclusive calendar-day range in a location
type DateRange struct {
	Start    string
	End      string
	Location *time.Location
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}

// FilterByRange keeps bills dated from the start of start to the last
// instant of end. Unless both bounds are given no filter is applied.
func FilterByRange(bills []entity.Bill, start, end string, loc *time.Location) ([]entity.Bill, error) {
	out := make([]entity.Bill, 0, len(bills))
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return append(out, bills...), nil
	}
	if loc == nil {
		loc = time.UTC
	}

	from, err := parseDay(start, loc)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(end, loc)
	if err != nil {
		return nil, err
	}
	to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	for _, b := range bills {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

// DateWiseTotals buckets bills by local calendar day, most recent day first.
// Payment methods other than CASH and UPI open a bucket but add nothing.
func DateWiseTotals(bills []entity.Bill, loc *time.Location) []entity.DateTotal {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[string]*entity.DateTotal)
	for _, b := range bills {
		day := b.Date.In(loc).Format(dateLayout)
		current, ok := buckets[day]
		if !ok {
			current = &entity.DateTotal{Date: day}
			buckets[day] = current
		}
		switch b.PaymentMethod {
		case enum.PaymentMethodCash:
			current.Cash += b.BillTotal
		case enum.PaymentMethodUPI:
			current.UPI += b.BillTotal
		}
		current.Total = current.Cash + current.UPI
	}

	out := make([]entity.DateTotal, 0, len(buckets))
	for _, t := range buckets {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// TotalsForDate picks one day out of totals; a day without bills is all zeros
func TotalsForDate(totals []entity.DateTotal, date string) entity.DateTotal {
	for _, t := range totals {
		if t.Date == date {
			return t
		}
	}
	return entity.DateTotal{Date: date}
}

// ToCSV joins headers and rows with commas and newlines. Fields are written
// verbatim: commas, quotes and newlines inside a field are not escaped.
func ToCSV(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// Export is a generated download
type Export struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"-"`
	ArchiveKey  string `json:"archive_key,omitempty"`
}

// CashRegisterReport is the cash register screen: all days plus one selected day
type CashRegisterReport struct {
	Totals   []entity.DateTotal `json:"totals"`
	Selected *entity.DateTotal  `json:"selected,omitempty"`
}

// ReportService handles bill history exports and the cash register
type ReportService struct {
	billRepo repository.BillRepository
	money    *currency.Money
	loc      *time.Location
	archiver objectstore.Archiver
	reporter diagnostics.Reporter
	now      func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	billRepo repository.BillRepository,
	money *currency.Money,
	loc *time.Location,
	archiver objectstore.Archiver,
	reporter diagnostics.Reporter,
) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if archiver == nil {
		archiver = objectstore.NewNullArchiver()
	}
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return &ReportService{
		billRepo: billRepo,
		money:    money,
		loc:      loc,
		archiver: archiver,
		reporter: reporter,
		now:      time.Now,
	}
}

// Location is the timezone used for calendar days
func (s *ReportService) Location() *time.Location {
	return s.loc
}

// BillHistoryCSV renders bills as the bill history export
func (s *ReportService) BillHistoryCSV(bills []entity.Bill) string {
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		items := make([]string, 0, len(b.Items))
		for _, line := range b.Items {
			items = append(items, fmt.Sprintf("%s (%d)", line.MenuItem.Name, line.Quantity))
		}
		rows = append(rows, []string{
			strconv.Itoa(b.BillNumber),
			b.Date.In(s.loc).Format(dateTimeLayout),
			strings.Join(items, ", "),
			b.PaymentMethod.String(),
			s.money.Format(b.BillTotal),
		})
	}
	return ToCSV(BillHistoryHeaders, rows)
}

// CashRegisterCSV renders date-wise totals as the cash register export
func (s *ReportService) CashRegisterCSV(totals []entity.DateTotal) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			t.Date,
			s.money.Format(t.Cash),
			s.money.Format(t.UPI),
			s.money.Format(t.Total),
		})
	}
	return ToCSV(CashRegisterHeaders, rows)
}

// CashRegister returns every day's totals and, when date is set, that day's card
func (s *ReportService) CashRegister(ctx context.Context, date string) (*CashRegisterReport, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &CashRegisterReport{Totals: DateWiseTotals(bills, s.loc)}
	if strings.TrimSpace(date) != "" {
		day, err := parseDay(date, s.loc)
		if err != nil {
			return nil, err
		}
		selected := TotalsForDate(report.Totals, day.Format(dateLayout))
		report.Selected = &selected
	}
	return report, nil
}

// ExportBills builds bills-export-YYYY-MM-DD.csv for the filtered history
func (s *ReportService) ExportBills(ctx context.Context, start, end string) (*Export, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := FilterByRange(bills, start, end, s.loc)
	if err != nil {
		return nil, err
	}

	return s.export(ctx, "bills-export", s.BillHistoryCSV(filtered)), nil
}

// ExportCashRegister builds cash-register-report-YYYY-MM-DD.csv
func (s *ReportService) ExportCashRegister(ctx context.Context) (*Export, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.export(ctx, "cash-register-report", s.CashRegisterCSV(DateWiseTotals(bills, s.loc))), nil
}

// export names the file after today's UTC date and archives a copy; a
// failed archive does not fail the download
func (s *ReportService) export(ctx context.Context, prefix, content string) *Export {
	exp := &Export{
		FileName:    fmt.Sprintf("%s-%s.csv", prefix, s.now().UTC().Format(dateLayout)),
		ContentType: "text/csv",
		Content:     content,
	}

	key, err := s.archiver.Put(ctx, exp.FileName, []byte(content), exp.ContentType)
	if err != nil {
		s.reporter.Report("export-archive", err)
		return exp
	}
	exp.ArchiveKey = key
	return exp
}
