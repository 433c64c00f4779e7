package services

import (
	"github.com/shopspring/decimal"

	"quickbudg/internal/models"
	"quickbudg/internal/pagination"
)

// BudgetTypeServicer defines the contract for the budget type registry.
type BudgetTypeServicer interface {
	FindByName(name string) (*models.BudgetType, error)
	FindByID(id string) (*models.BudgetType, error)
	GetOrCreate(name string) (*models.BudgetType, error)
	ListBudgetTypes(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetType], error)
}

// BudgetTotalServicer defines the contract for the monthly allocation ledger.
type BudgetTotalServicer interface {
	PeriodLister
	CreateBudgetTotal(year, month int, amount *decimal.Decimal, budgetTypeID, budgetTypeName string) (*models.BudgetTotal, error)
	GetBudgetTotalByID(id string) (*models.BudgetTotal, error)
	UpdateTotalAmount(id string, amount *decimal.Decimal) (*models.BudgetTotal, error)
	DeleteBudgetTotal(id string) error
	FilterByYearMonth(year, month int) (*PeriodQuery, error)
}

// PeriodLister returns a one-shot snapshot of the budget totals of a month.
type PeriodLister interface {
	ListByYearMonth(year, month int) ([]models.BudgetTotal, error)
}

// ExpenseServicer defines the contract for the expense log.
type ExpenseServicer interface {
	AddExpense(budgetTotalID string, amount *decimal.Decimal, description string) (*models.Expense, error)
	GetExpenseByID(id string) (*models.Expense, error)
}

// Band is the display severity tier of a consumed percentage.
type Band string

const (
	BandNeutral  Band = "neutral"
	BandLow      Band = "low"
	BandMedium   Band = "medium"
	BandHigh     Band = "high"
	BandCritical Band = "critical"
)

// BudgetProgress contains spending vs allocation for one budget total.
// Percentage is nil when the total has no allocation.
type BudgetProgress struct {
	BudgetTotalID  string          `json:"budget_total_id"`
	BudgetTypeID   string          `json:"budget_type_id"`
	BudgetTypeName string          `json:"budget_type_name"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalExpenses  int64           `json:"total_expenses"`
	ExpenseCount   int             `json:"expense_count"`
	Percentage     *int64          `json:"percentage"`
	Band           Band            `json:"band"`
}
