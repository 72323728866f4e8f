package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dompet/internal/cache"
	apperrors "dompet/internal/errors"
	"dompet/internal/pagination"
	"dompet/internal/services"
)

// CycleHandler handles budget cycle requests.
type CycleHandler struct {
	cycleService services.CycleServicer
	cache        *cache.Cache
}

// NewCycleHandler creates a new CycleHandler.
func NewCycleHandler(cycleService services.CycleServicer, c *cache.Cache) *CycleHandler {
	return &CycleHandler{cycleService: cycleService, cache: c}
}

// CreateCycleRequest represents the request payload for creating a cycle.
type CreateCycleRequest struct {
	Year            int   `json:"year" binding:"required,min=1"`
	Month           int   `json:"month" binding:"required,min=1,max=12"`
	ConfigVersionID *uint `json:"config_version_id"`
}

// CreateCycle handles creating a cycle with its full set of daily logs.
// @Summary     Create a cycle
// @Description Create the cycle labeled year-month and seed one log per day from the 28th of the previous month through the 27th
// @Tags        cycles
// @Accept      json
// @Produce     json
// @Param       request body CreateCycleRequest true "Cycle details"
// @Success     201 {object} map[string]interface{} "Cycle created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Config version not found"
// @Failure     409 {object} ErrorResponse "Cycle already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles [post]
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cycle, days, err := h.cycleService.CreateCycle(req.Year, req.Month, req.ConfigVersionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateCycle(c.Request.Context(), req.Year, req.Month)

	c.JSON(http.StatusCreated, gin.H{"cycle": cycle, "days": days})
}

// GetCycles handles listing cycles, newest first.
// @Summary     List cycles
// @Description List cycles ordered by year and month descending
// @Tags        cycles
// @Produce     json
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(24)
// @Success     200 {object} pagination.PageResponse[models.Cycle] "Cycles"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles [get]
func (h *CycleHandler) GetCycles(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	resp, err := h.cycleService.GetCycles(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCycleDetail handles the computed view of one cycle.
// @Summary     Get cycle detail
// @Description Get a cycle with its projected day entries, summary, resolved config and other expenses
// @Tags        cycles
// @Produce     json
// @Param       yearMonth path string true "Cycle label as YYYY-MM"
// @Success     200 {object} services.CycleDetail "Cycle detail"
// @Failure     400 {object} ErrorResponse "Invalid yearMonth"
// @Failure     404 {object} ErrorResponse "Cycle not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles/{yearMonth} [get]
func (h *CycleHandler) GetCycleDetail(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var cached services.CycleDetail
	if h.cache.GetCycleDetail(c.Request.Context(), year, month, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	detail, err := h.cycleService.GetCycleDetail(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.SetCycleDetail(c.Request.Context(), year, month, detail)

	c.JSON(http.StatusOK, detail)
}

// DeleteCycle handles removing a cycle and everything attached to it.
// @Summary     Delete a cycle
// @Description Delete a cycle along with its daily logs and other expenses
// @Tags        cycles
// @Produce     json
// @Param       yearMonth path string true "Cycle label as YYYY-MM"
// @Success     200 {object} map[string]bool "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid yearMonth"
// @Failure     404 {object} ErrorResponse "Cycle not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles/{yearMonth} [delete]
func (h *CycleHandler) DeleteCycle(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cycleService.DeleteCycle(year, month); err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateCycle(c.Request.Context(), year, month)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
