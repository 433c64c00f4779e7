package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single dated spend entry owned by exactly one BudgetTotal.
// BudgetTypeID, Year and Month are copied from the owner at creation.
type Expense struct {
	Base
	BudgetTotalID   string          `gorm:"type:text;not null;index" json:"budget_total_id"`
	Amount          decimal.Decimal `gorm:"type:text;not null" json:"amount"`
	DescriptionText string          `gorm:"not null" json:"description_text"`
	DateEntered     time.Time       `gorm:"not null" json:"date_entered"`
	BudgetTypeID    string          `gorm:"type:text" json:"budget_type_id"`
	Year            int             `gorm:"not null" json:"year"`
	Month           int             `gorm:"not null" json:"month"`
}

// DisplayDescription returns the description, or "N/A" when it is empty.
func (e *Expense) DisplayDescription() string {
	if e.DescriptionText == "" {
		return "N/A"
	}
	return e.DescriptionText
}
