package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"dompet/internal/cache"
	apperrors "dompet/internal/errors"
	"dompet/internal/services"
)

// DailyLogHandler handles daily log updates.
type DailyLogHandler struct {
	logService services.DailyLogServicer
	cache      *cache.Cache
}

// NewDailyLogHandler creates a new DailyLogHandler.
func NewDailyLogHandler(logService services.DailyLogServicer, c *cache.Cache) *DailyLogHandler {
	return &DailyLogHandler{logService: logService, cache: c}
}

// BulkWFORequest represents the request payload for replacing a cycle's WFO set.
type BulkWFORequest struct {
	CycleID  uint     `json:"cycle_id" binding:"required"`
	WFODates []string `json:"wfo_dates" binding:"dive,civil_date"`
}

// UpdateDailyLog handles a partial update of one daily log. The body is a
// JSON object where only the keys present change; an explicit null clears
// the field. Allowed keys: actual_amount, is_wfo, custom_label,
// custom_budget.
// @Summary     Update a daily log
// @Description Partially update a daily log; present keys change, null clears
// @Tags        daily-logs
// @Accept      json
// @Produce     json
// @Param       id path int true "Daily log ID"
// @Param       request body object true "Fields to update"
// @Success     200 {object} models.DailyLog "Updated log"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Log not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /daily-logs/{id} [patch]
func (h *DailyLogHandler) UpdateDailyLog(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Raw messages keep the absent-vs-null distinction that a struct
	// with pointer fields would lose.
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updates, err := decodeLogUpdates(body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	log, err := h.logService.UpdateDailyLog(id, updates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, log)
}

// BulkSetWFO handles replacing a cycle's office days in one call.
// @Summary     Bulk set WFO days
// @Description Replace the set of office days for a cycle; dates not listed are cleared
// @Tags        daily-logs
// @Accept      json
// @Produce     json
// @Param       request body BulkWFORequest true "Cycle and its office days"
// @Success     200 {array} models.DailyLog "Updated logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Cycle not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /daily-logs/bulk-wfo [patch]
func (h *DailyLogHandler) BulkSetWFO(c *gin.Context) {
	var req BulkWFORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	logs, err := h.logService.BulkSetWFO(req.CycleID, req.WFODates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, logs)
}

func decodeLogUpdates(body map[string]json.RawMessage) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(body))
	for key, raw := range body {
		switch key {
		case "actual_amount", "custom_budget":
			var v *int64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, key+" must be an integer or null")
			}
			updates[key] = v
		case "is_wfo":
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "is_wfo must be a boolean")
			}
			updates[key] = v
		case "custom_label":
			var v *string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom_label must be a string or null")
			}
			updates[key] = v
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown field: "+key)
		}
	}
	return updates, nil
}
