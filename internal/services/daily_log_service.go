package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
)

// allowed column names for partial daily-log updates.
var dailyLogColumns = map[string]bool{
	"actual_amount": true,
	"is_wfo":        true,
	"custom_label":  true,
	"custom_budget": true,
}

// dailyLogService handles partial updates to daily log rows. Rows are
// never created or deleted here: they come into existence with their
// cycle and leave with it.
type dailyLogService struct {
	db *gorm.DB
}

// NewDailyLogService creates a new DailyLogServicer.
func NewDailyLogService(db *gorm.DB) DailyLogServicer {
	return &dailyLogService{db: db}
}

// UpdateDailyLog applies a partial update. Only whitelisted columns are
// accepted; a nil value writes NULL, which is how actual_amount and the
// overrides are cleared.
func (s *dailyLogService) UpdateDailyLog(id uint, updates map[string]interface{}) (*models.DailyLog, error) {
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if dailyLogColumns[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	var log models.DailyLog
	if err := s.db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDailyLogNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&log).Updates(filtered).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.First(&log, id).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &log, nil
}

// BulkSetWFO makes wfoDates the complete set of WFO days for a cycle:
// every other day in the cycle is reset to non-WFO. Returns the cycle's
// logs in date order.
func (s *dailyLogService) BulkSetWFO(cycleID uint, wfoDates []string) ([]models.DailyLog, error) {
	var cycle models.Cycle
	if err := s.db.First(&cycle, cycleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DailyLog{}).Where("cycle_id = ?", cycleID).
			Update("is_wfo", false).Error; err != nil {
			return err
		}
		if len(wfoDates) == 0 {
			return nil
		}
		return tx.Model(&models.DailyLog{}).
			Where("cycle_id = ? AND log_date IN ?", cycleID, wfoDates).
			Update("is_wfo", true).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.DailyLog
	if err := s.db.Where("cycle_id = ?", cycleID).Order("log_date ASC").Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}
