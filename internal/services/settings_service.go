package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
)

// settingsService handles the singleton application settings row.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the settings row, creating it with zero initial
// savings on first access.
func (s *settingsService) GetSettings() (*models.AppSetting, error) {
	var setting models.AppSetting
	err := s.db.First(&setting, models.AppSettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.AppSetting{Base: models.Base{ID: models.AppSettingID}}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &setting, nil
}

// UpdateInitialSavings sets the balance the running calculation starts from.
func (s *settingsService) UpdateInitialSavings(amount int64) (*models.AppSetting, error) {
	setting, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(setting).Update("initial_savings", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return setting, nil
}
