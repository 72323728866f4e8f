package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dompet/internal/budget"
	apperrors "dompet/internal/errors"
	"dompet/internal/logger"
)

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseYearMonth parses a "YYYY-MM" path parameter into a cycle label.
func parseYearMonth(c *gin.Context) (year, month int, err error) {
	parts := strings.SplitN(c.Param("yearMonth"), "-", 2)
	if len(parts) != 2 {
		return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid yearMonth format. Use YYYY-MM")
	}
	year, yearErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	if yearErr != nil || monthErr != nil || year < 1 || month < 1 || month > 12 {
		return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid yearMonth format. Use YYYY-MM")
	}
	return year, month, nil
}

// parsePolicy reads the optional ?policy= query parameter. The filled
// policy is the default; "budget" selects budget-minus-actual.
func parsePolicy(c *gin.Context) (budget.BalancePolicy, error) {
	switch c.Query("policy") {
	case "", "filled":
		return budget.PolicyFilledVariance, nil
	case "budget":
		return budget.PolicyBudgetMinusActual, nil
	default:
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "policy must be 'filled' or 'budget'")
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
