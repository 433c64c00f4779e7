package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/events"
	"quickbudg/internal/models"
)

// expenseService is the log of spend entries against budget totals.
type expenseService struct {
	db  *gorm.DB
	bus *events.Bus
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, bus *events.Bus) ExpenseServicer {
	return &expenseService{db: db, bus: bus, now: time.Now}
}

// AddExpense records a spend of amount against the budget total with the
// given id. The expense takes its type and period from the owning total.
func (s *expenseService) AddExpense(budgetTotalID string, amount *decimal.Decimal, description string) (*models.Expense, error) {
	if err := validateAmount("amount", amount); err != nil {
		return nil, err
	}

	var expense *models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		owner, err := findBudgetTotal(tx, budgetTotalID)
		if err != nil {
			return err
		}

		expense = &models.Expense{
			BudgetTotalID:   owner.ID,
			Amount:          *amount,
			DescriptionText: description,
			DateEntered:     s.now().UTC(),
			BudgetTypeID:    owner.BudgetTypeID,
			Year:            owner.Year,
			Month:           owner.Month,
		}
		if err := tx.Create(expense).Error; err != nil {
			return storeError("create expense", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{
		Kind:          events.KindCreated,
		Entity:        events.EntityExpense,
		ID:            expense.ID,
		BudgetTotalID: expense.BudgetTotalID,
		Year:          expense.Year,
		Month:         expense.Month,
	})
	return expense, nil
}

// GetExpenseByID returns the expense with the given id.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", id).Take(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, storeError("find expense", err)
	}
	return &expense, nil
}
