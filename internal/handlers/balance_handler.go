package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dompet/internal/services"
)

// BalanceHandler handles running balance and savings reports.
type BalanceHandler struct {
	balanceService services.BalanceServicer
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService services.BalanceServicer) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetSavings handles the all-time savings report.
// @Summary     Get savings
// @Description Get initial savings plus the variance accumulated across every cycle
// @Tags        balance
// @Produce     json
// @Param       policy query string false "Balance policy" Enums(filled, budget) default(filled)
// @Success     200 {object} services.SavingsReport "Savings report"
// @Failure     400 {object} ErrorResponse "Invalid policy"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [get]
func (h *BalanceHandler) GetSavings(c *gin.Context) {
	policy, err := parsePolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.balanceService.GetSavings(policy)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetBalance handles the balance breakdown at one cycle.
// @Summary     Get balance at a cycle
// @Description Get the balance entering the cycle, the cycle's own variance, and the resulting balance
// @Tags        balance
// @Produce     json
// @Param       yearMonth path string true "Cycle label as YYYY-MM"
// @Param       policy query string false "Balance policy" Enums(filled, budget) default(filled)
// @Success     200 {object} budget.Balance "Balance breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance/{yearMonth} [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	policy, err := parsePolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.balanceService.GetBalanceAt(year, month, policy)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
