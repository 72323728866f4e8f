package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
)

// configVersionService handles configuration-version business logic.
type configVersionService struct {
	db *gorm.DB
}

// NewConfigVersionService creates a new ConfigVersionServicer.
func NewConfigVersionService(db *gorm.DB) ConfigVersionServicer {
	return &configVersionService{db: db}
}

// CreateConfigVersion creates a named version, filling unsupplied rate
// parameters with the defaults.
func (s *configVersionService) CreateConfigVersion(name string, params ConfigVersionParams) (*models.ConfigVersion, error) {
	version := &models.ConfigVersion{
		Name:                name,
		WeekdayBudget:       models.DefaultWeekdayBudget,
		WeekendBudget:       models.DefaultWeekendBudget,
		CarboLoadingBudget:  models.DefaultCarboLoadingBudget,
		ParkingPerDay:       models.DefaultParkingPerDay,
		GasPerFill:          models.DefaultGasPerFill,
		GasFillIntervalDays: models.DefaultGasFillIntervalDays,
	}
	applyParams(version, params)

	if err := s.db.Create(version).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return version, nil
}

// GetConfigVersions returns all versions, oldest first.
func (s *configVersionService) GetConfigVersions() ([]models.ConfigVersion, error) {
	var versions []models.ConfigVersion
	if err := s.db.Order("id ASC").Find(&versions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return versions, nil
}

// GetLatestConfigVersion returns the most recently created version.
// Cycles without a pinned version resolve to this one at read time.
func (s *configVersionService) GetLatestConfigVersion() (*models.ConfigVersion, error) {
	var version models.ConfigVersion
	if err := s.db.Order("id DESC").First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoConfigVersion
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &version, nil
}

// UpdateConfigVersion applies the supplied fields to an existing version.
// Historical cycles pinned to this version see the new rates; that is
// why edits normally go through creating a new version instead.
func (s *configVersionService) UpdateConfigVersion(id uint, params ConfigVersionParams) (*models.ConfigVersion, error) {
	var version models.ConfigVersion
	if err := s.db.First(&version, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConfigVersionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	applyParams(&version, params)

	if err := s.db.Save(&version).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &version, nil
}

// DeleteConfigVersion removes a version unless a cycle still references it.
func (s *configVersionService) DeleteConfigVersion(id uint) error {
	var count int64
	if err := s.db.Model(&models.Cycle{}).Where("config_version_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrConfigVersionInUse
	}

	result := s.db.Delete(&models.ConfigVersion{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConfigVersionNotFound
	}
	return nil
}

func applyParams(version *models.ConfigVersion, params ConfigVersionParams) {
	if params.Name != nil {
		version.Name = *params.Name
	}
	if params.WeekdayBudget != nil {
		version.WeekdayBudget = *params.WeekdayBudget
	}
	if params.WeekendBudget != nil {
		version.WeekendBudget = *params.WeekendBudget
	}
	if params.CarboLoadingBudget != nil {
		version.CarboLoadingBudget = *params.CarboLoadingBudget
	}
	if params.ParkingPerDay != nil {
		version.ParkingPerDay = *params.ParkingPerDay
	}
	if params.GasPerFill != nil {
		version.GasPerFill = *params.GasPerFill
	}
	if params.GasFillIntervalDays != nil {
		version.GasFillIntervalDays = *params.GasFillIntervalDays
	}
}
