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

// --- mock budget total service ---

type mockBudgetTotalService struct {
	createBudgetTotalFn  func(year, month int, amount *decimal.Decimal, budgetTypeID, budgetTypeName string) (*models.BudgetTotal, error)
	getBudgetTotalByIDFn func(id string) (*models.BudgetTotal, error)
	updateTotalAmountFn  func(id string, amount *decimal.Decimal) (*models.BudgetTotal, error)
	deleteBudgetTotalFn  func(id string) error
	listByYearMonthFn    func(year, month int) ([]models.BudgetTotal, error)
	filterByYearMonthFn  func(year, month int) (*services.PeriodQuery, error)
}

func (m *mockBudgetTotalService) CreateBudgetTotal(year, month int, amount *decimal.Decimal, budgetTypeID, budgetTypeName string) (*models.BudgetTotal, error) {
	if m.createBudgetTotalFn != nil {
		return m.createBudgetTotalFn(year, month, amount, budgetTypeID, budgetTypeName)
	}
	return &models.BudgetTotal{}, nil
}

func (m *mockBudgetTotalService) GetBudgetTotalByID(id string) (*models.BudgetTotal, error) {
	if m.getBudgetTotalByIDFn != nil {
		return m.getBudgetTotalByIDFn(id)
	}
	return &models.BudgetTotal{}, nil
}

func (m *mockBudgetTotalService) UpdateTotalAmount(id string, amount *decimal.Decimal) (*models.BudgetTotal, error) {
	if m.updateTotalAmountFn != nil {
		return m.updateTotalAmountFn(id, amount)
	}
	return &models.BudgetTotal{}, nil
}

func (m *mockBudgetTotalService) DeleteBudgetTotal(id string) error {
	if m.deleteBudgetTotalFn != nil {
		return m.deleteBudgetTotalFn(id)
	}
	return nil
}

func (m *mockBudgetTotalService) ListByYearMonth(year, month int) ([]models.BudgetTotal, error) {
	if m.listByYearMonthFn != nil {
		return m.listByYearMonthFn(year, month)
	}
	return []models.BudgetTotal{}, nil
}

func (m *mockBudgetTotalService) FilterByYearMonth(year, month int) (*services.PeriodQuery, error) {
	if m.filterByYearMonthFn != nil {
		return m.filterByYearMonthFn(year, month)
	}
	return nil, apperrors.ErrStore
}

var _ services.BudgetTotalServicer = (*mockBudgetTotalService)(nil)

func setupBudgetTotalRouter(handler *BudgetTotalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budget-totals", handler.CreateBudgetTotal)
	r.GET("/budget-totals", handler.GetBudgetTotals)
	r.GET("/budget-totals/:id", handler.GetBudgetTotal)
	r.PUT("/budget-totals/:id", handler.UpdateBudgetTotal)
	r.DELETE("/budget-totals/:id", handler.DeleteBudgetTotal)
	return r
}

func groceries(amount string, expenses ...string) *models.BudgetTotal {
	total := &models.BudgetTotal{
		Base:         models.Base{ID: testTotalID},
		Year:         2025,
		Month:        1,
		TotalAmount:  decimal.RequireFromString(amount),
		BudgetTypeID: testTypeID,
		BudgetType:   &models.BudgetType{Base: models.Base{ID: testTypeID}, Name: "Groceries"},
		Expenses:     []models.Expense{},
	}
	for _, e := range expenses {
		total.Expenses = append(total.Expenses, models.Expense{Amount: decimal.RequireFromString(e)})
	}
	return total
}

func TestBudgetTotalHandler_CreateBudgetTotal(t *testing.T) {
	t.Run("returns 201 with progress", func(t *testing.T) {
		var gotAmount *decimal.Decimal
		var gotName string
		svc := &mockBudgetTotalService{
			createBudgetTotalFn: func(year, month int, amount *decimal.Decimal, _ string, name string) (*models.BudgetTotal, error) {
				gotAmount, gotName = amount, name
				return groceries("500"), nil
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "POST", "/budget-totals",
			`{"year":2025,"month":1,"total_amount":"500.00","budget_type_name":"Groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAmount == nil || !gotAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected amount 500, got %v", gotAmount)
		}
		if gotName != "Groceries" {
			t.Errorf("expected name Groceries, got %q", gotName)
		}
		progress := parseJSON(t, rec)["progress"].(map[string]interface{})
		if progress["percentage"].(float64) != 0 || progress["band"] != "neutral" {
			t.Errorf("unexpected progress %v", progress)
		}
	})

	t.Run("accepts numeric amount", func(t *testing.T) {
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(&mockBudgetTotalService{}))

		rec := doRequest(r, "POST", "/budget-totals",
			`{"year":2025,"month":1,"total_amount":12.5,"budget_type_id":"`+testTypeID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"year":2025,"month":1,"budget_type_name":"Groceries"}`},
		{"negative amount", `{"year":2025,"month":1,"total_amount":-1,"budget_type_name":"Groceries"}`},
		{"month out of range", `{"year":2025,"month":13,"total_amount":1,"budget_type_name":"Groceries"}`},
		{"missing year", `{"month":1,"total_amount":1,"budget_type_name":"Groceries"}`},
		{"malformed type id", `{"year":2025,"month":1,"total_amount":1,"budget_type_id":"nope"}`},
	}
	for _, tc := range cases {
		t.Run("returns 400 on "+tc.name, func(t *testing.T) {
			r := setupBudgetTotalRouter(NewBudgetTotalHandler(&mockBudgetTotalService{}))

			rec := doRequest(r, "POST", "/budget-totals", tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 409 on duplicate month", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			createBudgetTotalFn: func(int, int, *decimal.Decimal, string, string) (*models.BudgetTotal, error) {
				return nil, apperrors.ErrDuplicateBudgetTotal
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "POST", "/budget-totals",
			`{"year":2025,"month":1,"total_amount":1,"budget_type_name":"Groceries"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_BUDGET_TOTAL")
	})
}

func TestBudgetTotalHandler_GetBudgetTotals(t *testing.T) {
	t.Run("returns progress views", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			listByYearMonthFn: func(year, month int) ([]models.BudgetTotal, error) {
				if year != 2025 || month != 1 {
					t.Errorf("unexpected period %d-%d", year, month)
				}
				return []models.BudgetTotal{*groceries("500", "120", "30")}, nil
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "GET", "/budget-totals?year=2025&month=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		b := budgets[0].(map[string]interface{})
		if b["total_expenses"].(float64) != 150 || b["percentage"].(float64) != 30 {
			t.Errorf("expected 150 spent at 30%%, got %v", b)
		}
		if b["budget_type_name"] != "Groceries" || b["band"] != "medium" {
			t.Errorf("unexpected view %v", b)
		}
	})

	t.Run("zero allocation has null percentage", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			listByYearMonthFn: func(int, int) ([]models.BudgetTotal, error) {
				return []models.BudgetTotal{*groceries("0", "5")}, nil
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "GET", "/budget-totals?year=2025&month=1", "")

		b := parseJSON(t, rec)["budgets"].([]interface{})[0].(map[string]interface{})
		if b["percentage"] != nil {
			t.Errorf("expected null percentage, got %v", b["percentage"])
		}
	})

	t.Run("returns 400 without period", func(t *testing.T) {
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(&mockBudgetTotalService{}))

		for _, path := range []string{"/budget-totals", "/budget-totals?year=2025", "/budget-totals?year=2025&month=0"} {
			rec := doRequest(r, "GET", path, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", path, rec.Code)
			}
		}
	})
}

func TestBudgetTotalHandler_UpdateBudgetTotal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			updateTotalAmountFn: func(id string, amount *decimal.Decimal) (*models.BudgetTotal, error) {
				if id != testTotalID {
					t.Errorf("unexpected id %s", id)
				}
				return groceries(amount.String(), "100"), nil
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "PUT", "/budget-totals/"+testTotalID, `{"total_amount":"400"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		progress := parseJSON(t, rec)["progress"].(map[string]interface{})
		if progress["percentage"].(float64) != 25 {
			t.Errorf("expected 25%%, got %v", progress["percentage"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			updateTotalAmountFn: func(string, *decimal.Decimal) (*models.BudgetTotal, error) {
				return nil, apperrors.ErrBudgetTotalNotFound
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "PUT", "/budget-totals/"+testTotalID, `{"total_amount":"400"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_TOTAL_NOT_FOUND")
	})
}

func TestBudgetTotalHandler_DeleteBudgetTotal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var deleted string
		svc := &mockBudgetTotalService{
			deleteBudgetTotalFn: func(id string) error {
				deleted = id
				return nil
			},
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "DELETE", "/budget-totals/"+testTotalID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != testTotalID {
			t.Errorf("expected %s deleted, got %q", testTotalID, deleted)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockBudgetTotalService{
			deleteBudgetTotalFn: func(string) error { return apperrors.ErrBudgetTotalNotFound },
		}
		r := setupBudgetTotalRouter(NewBudgetTotalHandler(svc))

		rec := doRequest(r, "DELETE", "/budget-totals/"+testTotalID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
