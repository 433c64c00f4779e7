package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/models"
	"quickbudg/internal/services"
)

// BudgetTotalHandler handles monthly allocation requests.
type BudgetTotalHandler struct {
	budgetTotalService services.BudgetTotalServicer
}

// NewBudgetTotalHandler creates a new BudgetTotalHandler.
func NewBudgetTotalHandler(budgetTotalService services.BudgetTotalServicer) *BudgetTotalHandler {
	return &BudgetTotalHandler{budgetTotalService: budgetTotalService}
}

// CreateBudgetTotalRequest represents the request payload for allocating a month.
// BudgetTypeID selects an existing type and wins over BudgetTypeName.
type CreateBudgetTotalRequest struct {
	Year           int              `json:"year" binding:"required,min=1,max=9999"`
	Month          int              `json:"month" binding:"required,month"`
	TotalAmount    *decimal.Decimal `json:"total_amount" binding:"required,gte=0" swaggertype:"number"`
	BudgetTypeID   string           `json:"budget_type_id" binding:"omitempty,uuid"`
	BudgetTypeName string           `json:"budget_type_name" binding:"omitempty,max=100"`
}

// UpdateBudgetTotalRequest represents the request payload for changing an allocation.
type UpdateBudgetTotalRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount" binding:"required,gte=0" swaggertype:"number"`
}

// BudgetTotalResponse pairs a budget total with its computed progress.
type BudgetTotalResponse struct {
	BudgetTotal *models.BudgetTotal     `json:"budget_total"`
	Progress    services.BudgetProgress `json:"progress"`
}

// PeriodResponse lists the progress views of one month.
type PeriodResponse struct {
	Year    int                       `json:"year"`
	Month   int                       `json:"month"`
	Budgets []services.BudgetProgress `json:"budgets"`
}

func newBudgetTotalResponse(total *models.BudgetTotal) BudgetTotalResponse {
	return BudgetTotalResponse{BudgetTotal: total, Progress: services.Progress(total)}
}

// CreateBudgetTotal handles allocating an amount to a budget type for a month.
// @Summary     Create a budget total
// @Description Allocate an amount to a budget type, selected by id or resolved by name, for one month
// @Tags        budget-totals
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetTotalRequest true "Allocation details"
// @Success     201 {object} BudgetTotalResponse "Budget total created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget type not found"
// @Failure     409 {object} ErrorResponse "Month already allocated for this type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-totals [post]
func (h *BudgetTotalHandler) CreateBudgetTotal(c *gin.Context) {
	var req CreateBudgetTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	total, err := h.budgetTotalService.CreateBudgetTotal(
		req.Year, req.Month, req.TotalAmount, req.BudgetTypeID, req.BudgetTypeName,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBudgetTotalResponse(total))
}

// GetBudgetTotals handles listing the progress of every budget total in a month.
// @Summary     List a month
// @Description Get the progress of every budget total of one month in insertion order
// @Tags        budget-totals
// @Produce     json
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} PeriodResponse "Progress views"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-totals [get]
func (h *BudgetTotalHandler) GetBudgetTotals(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views, err := services.ListForPeriod(h.budgetTotalService, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PeriodResponse{Year: year, Month: month, Budgets: views})
}

// GetBudgetTotal handles retrieving a budget total with its expenses.
// @Summary     Get budget total by ID
// @Tags        budget-totals
// @Produce     json
// @Param       id path string true "Budget total ID"
// @Success     200 {object} BudgetTotalResponse "Budget total"
// @Failure     400 {object} ErrorResponse "Invalid budget total ID"
// @Failure     404 {object} ErrorResponse "Budget total not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-totals/{id} [get]
func (h *BudgetTotalHandler) GetBudgetTotal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.budgetTotalService.GetBudgetTotalByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBudgetTotalResponse(total))
}

// UpdateBudgetTotal handles changing the allocated amount.
// @Summary     Update budget total amount
// @Tags        budget-totals
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Budget total ID"
// @Param       request body UpdateBudgetTotalRequest true "New amount"
// @Success     200 {object} BudgetTotalResponse "Updated budget total"
// @Failure     400 {object} ErrorResponse "Invalid input or budget total ID"
// @Failure     404 {object} ErrorResponse "Budget total not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-totals/{id} [put]
func (h *BudgetTotalHandler) UpdateBudgetTotal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	total, err := h.budgetTotalService.UpdateTotalAmount(id, req.TotalAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBudgetTotalResponse(total))
}

// DeleteBudgetTotal handles deleting a budget total and its expenses.
// @Summary     Delete budget total
// @Description Delete a budget total together with every expense it owns
// @Tags        budget-totals
// @Produce     json
// @Param       id path string true "Budget total ID"
// @Success     200 {object} map[string]string "Budget total deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget total ID"
// @Failure     404 {object} ErrorResponse "Budget total not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-totals/{id} [delete]
func (h *BudgetTotalHandler) DeleteBudgetTotal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetTotalService.DeleteBudgetTotal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget total deleted successfully"})
}
