package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/models"
	"quickbudg/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	addExpenseFn     func(budgetTotalID string, amount *decimal.Decimal, description string) (*models.Expense, error)
	getExpenseByIDFn func(id string) (*models.Expense, error)
}

func (m *mockExpenseService) AddExpense(budgetTotalID string, amount *decimal.Decimal, description string) (*models.Expense, error) {
	if m.addExpenseFn != nil {
		return m.addExpenseFn(budgetTotalID, amount, description)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(id string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(id)
	}
	return &models.Expense{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budget-totals/:id/expenses", handler.AddExpense)
	r.GET("/expenses/:id", handler.GetExpense)
	return r
}

func TestExpenseHandler_AddExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			addExpenseFn: func(budgetTotalID string, amount *decimal.Decimal, description string) (*models.Expense, error) {
				return &models.Expense{
					Base:            models.Base{ID: testExpID},
					BudgetTotalID:   budgetTotalID,
					Amount:          *amount,
					DescriptionText: description,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/budget-totals/"+testTotalID+"/expenses", `{"amount":"120.00","description":"Store run"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if expense["budget_total_id"] != testTotalID {
			t.Errorf("expected owner %s, got %v", testTotalID, expense["budget_total_id"])
		}
		if expense["description_text"] != "Store run" {
			t.Errorf("expected description, got %v", expense["description_text"])
		}
	})

	t.Run("description is optional", func(t *testing.T) {
		var gotDescription = "unset"
		svc := &mockExpenseService{
			addExpenseFn: func(_ string, _ *decimal.Decimal, description string) (*models.Expense, error) {
				gotDescription = description
				return &models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/budget-totals/"+testTotalID+"/expenses", `{"amount":0}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDescription != "" {
			t.Errorf("expected empty description, got %q", gotDescription)
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/budget-totals/"+testTotalID+"/expenses", `{"description":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 on missing budget total", func(t *testing.T) {
		svc := &mockExpenseService{
			addExpenseFn: func(string, *decimal.Decimal, string) (*models.Expense, error) {
				return nil, apperrors.ErrBudgetTotalNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/budget-totals/"+testTotalID+"/expenses", `{"amount":1}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_TOTAL_NOT_FOUND")
	})
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			getExpenseByIDFn: func(string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/"+testExpID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}
