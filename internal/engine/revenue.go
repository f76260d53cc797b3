package engine

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

// YearMonth identifies the calendar month a conversion counts toward.
type YearMonth struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func CurrentMonth() YearMonth {
	return MonthOf(time.Now())
}

func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

// ParseYearMonth reads the "2026-08" form used in query parameters.
func ParseYearMonth(raw string) (YearMonth, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return YearMonth{}, err
	}
	return MonthOf(t), nil
}

// MonthlyRevenue sums conversion amounts for the calendar month of each
// conversion's CreatedAt, not its age. Every status counts: tier is a
// volume signal, only the ledger discriminates by status.
func MonthlyRevenue(conversions []*domain.Conversion, month YearMonth) float64 {
	var total float64
	for _, conversion := range conversions {
		if month.Contains(conversion.CreatedAt) {
			total += conversion.Amount
		}
	}
	return total
}

// TotalRevenue sums amounts across all time, used for all-time displays
// and leaderboards.
func TotalRevenue(conversions []*domain.Conversion) float64 {
	var total float64
	for _, conversion := range conversions {
		total += conversion.Amount
	}
	return total
}
