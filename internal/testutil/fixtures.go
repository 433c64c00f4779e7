package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"quickbudg/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing loudly on a typo in a test.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DecPtr returns a pointer to the parsed decimal.
func DecPtr(s string) *decimal.Decimal {
	d := Dec(s)
	return &d
}

// CreateTestBudgetType creates a budget type with a unique name.
func CreateTestBudgetType(t *testing.T, db *gorm.DB) *models.BudgetType {
	t.Helper()
	return CreateTestBudgetTypeWithName(t, db, fmt.Sprintf("Test Type %d", nextID()))
}

// CreateTestBudgetTypeWithName creates a budget type with the given name.
func CreateTestBudgetTypeWithName(t *testing.T, db *gorm.DB, name string) *models.BudgetType {
	t.Helper()

	budgetType := &models.BudgetType{Name: name}
	if err := db.Create(budgetType).Error; err != nil {
		t.Fatalf("failed to create test budget type: %v", err)
	}
	return budgetType
}

// CreateTestBudgetTotal creates a budget total for the given type and period.
func CreateTestBudgetTotal(t *testing.T, db *gorm.DB, budgetTypeID string, year, month int, amount string) *models.BudgetTotal {
	t.Helper()

	total := &models.BudgetTotal{
		Year:         year,
		Month:        month,
		TotalAmount:  Dec(amount),
		BudgetTypeID: budgetTypeID,
	}
	if err := db.Omit("BudgetType", "Expenses").Create(total).Error; err != nil {
		t.Fatalf("failed to create test budget total: %v", err)
	}
	return total
}

// CreateTestExpense creates an expense owned by total.
func CreateTestExpense(t *testing.T, db *gorm.DB, total *models.BudgetTotal, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		BudgetTotalID:   total.ID,
		Amount:          Dec(amount),
		DescriptionText: fmt.Sprintf("Test Expense %d", nextID()),
		DateEntered:     time.Now().UTC(),
		BudgetTypeID:    total.BudgetTypeID,
		Year:            total.Year,
		Month:           total.Month,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
