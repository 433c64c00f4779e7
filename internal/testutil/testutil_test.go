package testutil_test

import (
	"testing"

	"quickbudg/internal/errors"
	"quickbudg/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	for _, table := range []string{"budget_types", "budget_totals", "expenses", "data_migrations"} {
		if n := testutil.CountRows(t, db, table); table != "data_migrations" && n != 0 {
			t.Errorf("table %q should start empty, has %d rows", table, n)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	b := testutil.SetupTestDB(t)

	testutil.CreateTestBudgetType(t, a)
	if n := testutil.CountRows(t, b, "budget_types"); n != 0 {
		t.Errorf("expected separate stores, second store has %d budget types", n)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	budgetType := testutil.CreateTestBudgetType(t, db)
	if budgetType.ID == "" {
		t.Fatal("budget type should have an id")
	}

	total := testutil.CreateTestBudgetTotal(t, db, budgetType.ID, 2025, 3, "250.50")
	if !total.TotalAmount.Equal(testutil.Dec("250.5")) {
		t.Errorf("expected total amount 250.50, got %s", total.TotalAmount)
	}

	expense := testutil.CreateTestExpense(t, db, total, "12.25")
	if expense.BudgetTotalID != total.ID {
		t.Errorf("expected expense owned by %s, got %s", total.ID, expense.BudgetTotalID)
	}
	if expense.Year != 2025 || expense.Month != 3 {
		t.Errorf("expected period 2025-03, got %d-%d", expense.Year, expense.Month)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetTotalNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_TOTAL_NOT_FOUND")
	testutil.AssertKind(t, err, errors.KindNotFound)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
