package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"dompet/internal/cache"
	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/services"
)

// OtherExpenseHandler handles ad-hoc parking and gas expenses.
type OtherExpenseHandler struct {
	expenseService services.OtherExpenseServicer
	cache          *cache.Cache
}

// NewOtherExpenseHandler creates a new OtherExpenseHandler.
func NewOtherExpenseHandler(expenseService services.OtherExpenseServicer, c *cache.Cache) *OtherExpenseHandler {
	return &OtherExpenseHandler{expenseService: expenseService, cache: c}
}

// CreateOtherExpenseRequest represents the request payload for recording an expense.
type CreateOtherExpenseRequest struct {
	CycleID     uint    `json:"cycle_id" binding:"required"`
	Category    string  `json:"category" binding:"required,expense_category"`
	Amount      int64   `json:"amount" binding:"required,min=0"`
	ExpenseDate string  `json:"expense_date" binding:"required,civil_date"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// CreateOtherExpense handles recording a parking or gas expense.
// @Summary     Create an other expense
// @Description Record an actual parking or gas expense against a cycle
// @Tags        other-expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateOtherExpenseRequest true "Expense details"
// @Success     201 {object} models.OtherExpense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Cycle not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /other-expenses [post]
func (h *OtherExpenseHandler) CreateOtherExpense(c *gin.Context) {
	var req CreateOtherExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateOtherExpense(req.CycleID, models.ExpenseCategory(req.Category), req.Amount, req.ExpenseDate, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusCreated, expense)
}

// UpdateOtherExpense handles a partial update of one expense. Present keys
// change; description accepts null to clear. Allowed keys: amount,
// expense_date, description, category.
// @Summary     Update an other expense
// @Description Partially update a recorded expense
// @Tags        other-expenses
// @Accept      json
// @Produce     json
// @Param       id path int true "Expense ID"
// @Param       request body object true "Fields to update"
// @Success     200 {object} models.OtherExpense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /other-expenses/{id} [patch]
func (h *OtherExpenseHandler) UpdateOtherExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updates, err := decodeExpenseUpdates(body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateOtherExpense(id, updates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, expense)
}

// DeleteOtherExpense handles removing a recorded expense.
// @Summary     Delete an other expense
// @Description Delete a recorded expense
// @Tags        other-expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]bool "Deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /other-expenses/{id} [delete]
func (h *OtherExpenseHandler) DeleteOtherExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteOtherExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func decodeExpenseUpdates(body map[string]json.RawMessage) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(body))
	for key, raw := range body {
		switch key {
		case "amount":
			var v int64
			if err := json.Unmarshal(raw, &v); err != nil || v < 0 {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a non-negative integer")
			}
			updates[key] = v
		case "expense_date":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense_date must be a YYYY-MM-DD string")
			}
			updates[key] = v
		case "category":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be a string")
			}
			if v != string(models.ExpenseCategoryParking) && v != string(models.ExpenseCategoryGas) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be parking or gas")
			}
			updates[key] = v
		case "description":
			var v *string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be a string or null")
			}
			updates[key] = v
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown field: "+key)
		}
	}
	return updates, nil
}
