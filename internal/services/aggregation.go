package services

import (
	"github.com/shopspring/decimal"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/models"
)

var hundred = decimal.NewFromInt(100)

// TotalExpenses returns the integer-truncated sum of the expenses owned by bt.
func TotalExpenses(bt *models.BudgetTotal) int64 {
	return bt.TotalExpenses()
}

// Percentage returns totalExpenses / totalAmount * 100 truncated to an
// integer. A budget total with no allocation has no percentage.
func Percentage(bt *models.BudgetTotal) (int64, error) {
	if bt.TotalAmount.IsZero() {
		return 0, apperrors.ErrZeroAllocation
	}
	spent := decimal.NewFromInt(bt.TotalExpenses())
	return spent.Mul(hundred).Div(bt.TotalAmount).Truncate(0).IntPart(), nil
}

// ColorBand maps a consumed percentage to its display tier:
// 0 neutral, 1-25 low, 26-50 medium, 51-75 high, above 75 critical.
func ColorBand(pct int64) Band {
	switch {
	case pct <= 0:
		return BandNeutral
	case pct <= 25:
		return BandLow
	case pct <= 50:
		return BandMedium
	case pct <= 75:
		return BandHigh
	default:
		return BandCritical
	}
}

// Progress computes the spending view of bt from its current expenses.
func Progress(bt *models.BudgetTotal) BudgetProgress {
	p := BudgetProgress{
		BudgetTotalID:  bt.ID,
		BudgetTypeID:   bt.BudgetTypeID,
		BudgetTypeName: bt.BudgetTypeName(),
		Year:           bt.Year,
		Month:          bt.Month,
		TotalAmount:    bt.TotalAmount,
		TotalExpenses:  bt.TotalExpenses(),
		ExpenseCount:   len(bt.Expenses),
		Band:           BandNeutral,
	}
	if pct, err := Percentage(bt); err == nil {
		p.Percentage = &pct
		p.Band = ColorBand(pct)
	}
	return p
}

// ProgressForPeriod computes the progress of every total, keeping their order.
func ProgressForPeriod(totals []models.BudgetTotal) []BudgetProgress {
	views := make([]BudgetProgress, 0, len(totals))
	for i := range totals {
		views = append(views, Progress(&totals[i]))
	}
	return views
}

// ListForPeriod returns the progress views of one month, read fresh from l.
func ListForPeriod(l PeriodLister, year, month int) ([]BudgetProgress, error) {
	totals, err := l.ListByYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	return ProgressForPeriod(totals), nil
}
