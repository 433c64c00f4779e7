package models

import "github.com/shopspring/decimal"

// BudgetTotal is one month's allocation for one budget type. It owns the
// expenses logged against that month.
type BudgetTotal struct {
	Base
	Year         int             `gorm:"not null" json:"year"`
	Month        int             `gorm:"not null" json:"month"`
	TotalAmount  decimal.Decimal `gorm:"type:text;not null" json:"total_amount"`
	BudgetTypeID string          `gorm:"type:text" json:"budget_type_id"`

	// Relationships
	BudgetType *BudgetType `gorm:"foreignKey:BudgetTypeID" json:"budget_type,omitempty"`
	Expenses   []Expense   `gorm:"foreignKey:BudgetTotalID" json:"expenses"`
}

// ExpenseSum returns the exact sum of the owned expense amounts.
func (bt *BudgetTotal) ExpenseSum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range bt.Expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// TotalExpenses returns the sum of the owned expense amounts truncated to an
// integer.
func (bt *BudgetTotal) TotalExpenses() int64 {
	return bt.ExpenseSum().Truncate(0).IntPart()
}

// BudgetTypeName returns the name of the loaded budget type, or "" when the
// relationship was not preloaded.
func (bt *BudgetTotal) BudgetTypeName() string {
	if bt.BudgetType == nil {
		return ""
	}
	return bt.BudgetType.Name
}
