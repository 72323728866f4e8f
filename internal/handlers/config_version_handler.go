package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dompet/internal/cache"
	apperrors "dompet/internal/errors"
	"dompet/internal/services"
)

// ConfigVersionHandler handles configuration-version requests.
type ConfigVersionHandler struct {
	versionService services.ConfigVersionServicer
	cache          *cache.Cache
}

// NewConfigVersionHandler creates a new ConfigVersionHandler.
func NewConfigVersionHandler(versionService services.ConfigVersionServicer, c *cache.Cache) *ConfigVersionHandler {
	return &ConfigVersionHandler{versionService: versionService, cache: c}
}

// CreateConfigVersionRequest represents the request payload for creating a version.
type CreateConfigVersionRequest struct {
	Name                string `json:"name" binding:"required,min=1,max=100"`
	WeekdayBudget       *int64 `json:"weekday_budget" binding:"omitempty,min=0"`
	WeekendBudget       *int64 `json:"weekend_budget" binding:"omitempty,min=0"`
	CarboLoadingBudget  *int64 `json:"carbo_loading_budget" binding:"omitempty,min=0"`
	ParkingPerDay       *int64 `json:"parking_per_day" binding:"omitempty,min=0"`
	GasPerFill          *int64 `json:"gas_per_fill" binding:"omitempty,min=0"`
	GasFillIntervalDays *int   `json:"gas_fill_interval_days" binding:"omitempty,min=0"`
}

// UpdateConfigVersionRequest represents the request payload for updating a version.
type UpdateConfigVersionRequest struct {
	Name                *string `json:"name" binding:"omitempty,min=1,max=100"`
	WeekdayBudget       *int64  `json:"weekday_budget" binding:"omitempty,min=0"`
	WeekendBudget       *int64  `json:"weekend_budget" binding:"omitempty,min=0"`
	CarboLoadingBudget  *int64  `json:"carbo_loading_budget" binding:"omitempty,min=0"`
	ParkingPerDay       *int64  `json:"parking_per_day" binding:"omitempty,min=0"`
	GasPerFill          *int64  `json:"gas_per_fill" binding:"omitempty,min=0"`
	GasFillIntervalDays *int    `json:"gas_fill_interval_days" binding:"omitempty,min=0"`
}

// CreateConfigVersion handles the creation of a new configuration version.
// @Summary     Create a configuration version
// @Description Create a named snapshot of budget rate parameters
// @Tags        config-versions
// @Accept      json
// @Produce     json
// @Param       request body CreateConfigVersionRequest true "Version details"
// @Success     201 {object} models.ConfigVersion "Version created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config-versions [post]
func (h *ConfigVersionHandler) CreateConfigVersion(c *gin.Context) {
	var req CreateConfigVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	version, err := h.versionService.CreateConfigVersion(req.Name, services.ConfigVersionParams{
		WeekdayBudget:       req.WeekdayBudget,
		WeekendBudget:       req.WeekendBudget,
		CarboLoadingBudget:  req.CarboLoadingBudget,
		ParkingPerDay:       req.ParkingPerDay,
		GasPerFill:          req.GasPerFill,
		GasFillIntervalDays: req.GasFillIntervalDays,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	// A new latest version changes what unpinned cycles resolve to.
	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusCreated, version)
}

// GetConfigVersions handles listing all configuration versions.
// @Summary     Get configuration versions
// @Description List all configuration versions, oldest first
// @Tags        config-versions
// @Produce     json
// @Success     200 {array} models.ConfigVersion "Versions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config-versions [get]
func (h *ConfigVersionHandler) GetConfigVersions(c *gin.Context) {
	versions, err := h.versionService.GetConfigVersions()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// UpdateConfigVersion handles editing an existing version in place.
// @Summary     Update a configuration version
// @Description Update the supplied fields of a configuration version
// @Tags        config-versions
// @Accept      json
// @Produce     json
// @Param       id path int true "Version ID"
// @Param       request body UpdateConfigVersionRequest true "Fields to update"
// @Success     200 {object} models.ConfigVersion "Updated version"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Version not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config-versions/{id} [put]
func (h *ConfigVersionHandler) UpdateConfigVersion(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateConfigVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	version, err := h.versionService.UpdateConfigVersion(id, services.ConfigVersionParams{
		Name:                req.Name,
		WeekdayBudget:       req.WeekdayBudget,
		WeekendBudget:       req.WeekendBudget,
		CarboLoadingBudget:  req.CarboLoadingBudget,
		ParkingPerDay:       req.ParkingPerDay,
		GasPerFill:          req.GasPerFill,
		GasFillIntervalDays: req.GasFillIntervalDays,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, version)
}

// DeleteConfigVersion handles removing a version not referenced by any cycle.
// @Summary     Delete a configuration version
// @Description Delete a configuration version; fails while cycles reference it
// @Tags        config-versions
// @Produce     json
// @Param       id path int true "Version ID"
// @Success     200 {object} map[string]bool "Deleted"
// @Failure     404 {object} ErrorResponse "Version not found"
// @Failure     409 {object} ErrorResponse "Version in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /config-versions/{id} [delete]
func (h *ConfigVersionHandler) DeleteConfigVersion(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.versionService.DeleteConfigVersion(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"success": true})
}
