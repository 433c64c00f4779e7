package models

// BudgetType is a named spending category, e.g. "Groceries".
// Names are case-sensitive and unique.
type BudgetType struct {
	Base
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`

	// Relationships
	BudgetTotals []BudgetTotal `gorm:"foreignKey:BudgetTypeID" json:"budget_totals,omitempty"`
}
