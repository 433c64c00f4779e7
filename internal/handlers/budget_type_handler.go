package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/pagination"
	"quickbudg/internal/services"
)

// BudgetTypeHandler handles budget type requests.
type BudgetTypeHandler struct {
	budgetTypeService services.BudgetTypeServicer
}

// NewBudgetTypeHandler creates a new BudgetTypeHandler.
func NewBudgetTypeHandler(budgetTypeService services.BudgetTypeServicer) *BudgetTypeHandler {
	return &BudgetTypeHandler{budgetTypeService: budgetTypeService}
}

// CreateBudgetTypeRequest represents the request payload for resolving a budget type by name.
type CreateBudgetTypeRequest struct {
	Name string `json:"name" binding:"required,not_blank,max=100"`
}

// CreateBudgetType handles get-or-create of a budget type by name.
// @Summary     Get or create a budget type
// @Description Return the budget type with the given name, creating it when missing
// @Tags        budget-types
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetTypeRequest true "Budget type name"
// @Success     200 {object} models.BudgetType "Budget type"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-types [post]
func (h *BudgetTypeHandler) CreateBudgetType(c *gin.Context) {
	var req CreateBudgetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budgetType, err := h.budgetTypeService.GetOrCreate(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_type": budgetType})
}

// GetBudgetTypes handles listing budget types for the type picker.
// @Summary     List budget types
// @Description Get a paginated list of budget types ordered by name
// @Tags        budget-types
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetType] "Paginated budget types"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-types [get]
func (h *BudgetTypeHandler) GetBudgetTypes(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.budgetTypeService.ListBudgetTypes(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetType handles retrieving one budget type.
// @Summary     Get budget type by ID
// @Tags        budget-types
// @Produce     json
// @Param       id path string true "Budget type ID"
// @Success     200 {object} models.BudgetType "Budget type"
// @Failure     400 {object} ErrorResponse "Invalid budget type ID"
// @Failure     404 {object} ErrorResponse "Budget type not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-types/{id} [get]
func (h *BudgetTypeHandler) GetBudgetType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetType, err := h.budgetTypeService.FindByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_type": budgetType})
}
