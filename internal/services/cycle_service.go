package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"dompet/internal/budget"
	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/pagination"
)

// cycleService handles cycle business logic: creating the window with
// its daily-log placeholders, computing the full detail view, and
// cascading deletion.
type cycleService struct {
	db       *gorm.DB
	versions ConfigVersionServicer
	loc      *time.Location
}

// NewCycleService creates a new CycleServicer. loc is the timezone civil
// dates are interpreted in.
func NewCycleService(db *gorm.DB, versions ConfigVersionServicer, loc *time.Location) CycleServicer {
	if loc == nil {
		loc = time.Local
	}
	return &cycleService{db: db, versions: versions, loc: loc}
}

// CreateCycle creates the cycle for (year, month) together with one
// daily-log placeholder per date in its span. Returns the cycle and the
// number of days generated. A cycle cannot exist without at least one
// configuration version to price its days.
func (s *cycleService) CreateCycle(year, month int, configVersionID *uint) (*models.Cycle, int, error) {
	var existing models.Cycle
	err := s.db.Where("year = ? AND month = ?", year, month).First(&existing).Error
	if err == nil {
		return nil, 0, apperrors.ErrCycleExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	versionID := configVersionID
	if versionID != nil {
		var version models.ConfigVersion
		if err := s.db.First(&version, *versionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperrors.ErrConfigVersionNotFound
			}
			return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	} else {
		latest, err := s.versions.GetLatestConfigVersion()
		if err != nil {
			return nil, 0, err
		}
		versionID = &latest.ID
	}

	start := budget.CycleStart(year, month)
	end := budget.CycleEnd(year, month)
	dates := budget.CycleDates(start, end)

	cycle := &models.Cycle{
		Year:            year,
		Month:           month,
		StartDate:       start.String(),
		EndDate:         end.String(),
		ConfigVersionID: versionID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cycle).Error; err != nil {
			return err
		}
		logs := make([]models.DailyLog, 0, len(dates))
		for _, d := range dates {
			logs = append(logs, models.DailyLog{CycleID: cycle.ID, LogDate: d.String()})
		}
		return tx.Create(&logs).Error
	})
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return cycle, len(dates), nil
}

// GetCycles returns a page of cycles, newest label first.
func (s *cycleService) GetCycles(page pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error) {
	page.Defaults()

	base := s.db.Model(&models.Cycle{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cycles []models.Cycle
	if err := base.Order("year DESC, month DESC").Scopes(pagination.Paginate(page)).Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cycles, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCycleDetail loads one cycle and recomputes everything derived: the
// projected day entries, the summary, and the resolved configuration.
// Nothing computed here is ever persisted.
func (s *cycleService) GetCycleDetail(year, month int) (*CycleDetail, error) {
	var cycle models.Cycle
	if err := s.db.Where("year = ? AND month = ?", year, month).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	version, err := s.resolveConfigVersion(&cycle)
	if err != nil {
		return nil, err
	}
	cfg := version.Snapshot()

	var logs []models.DailyLog
	if err := s.db.Where("cycle_id = ?", cycle.ID).Order("log_date ASC").Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	records := make([]budget.LogRecord, 0, len(logs))
	for i := range logs {
		rec, err := logs[i].Record(s.loc)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCorruptDate, err)
		}
		records = append(records, rec)
	}
	entries := budget.ProjectEntries(records, cfg)

	start, end, err := cycle.Span(s.loc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCorruptDate, err)
	}
	summary := budget.Summarize(entries, start, end, cfg)

	var expenses []models.OtherExpense
	if err := s.db.Where("cycle_id = ?", cycle.ID).Order("expense_date ASC, id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.OtherExpense{}
	}

	return &CycleDetail{
		Cycle:         cycle,
		Entries:       entries,
		Summary:       summary,
		Config:        *version,
		OtherExpenses: expenses,
	}, nil
}

// DeleteCycle removes the cycle and, with it, its daily logs and other
// expenses.
func (s *cycleService) DeleteCycle(year, month int) error {
	var cycle models.Cycle
	if err := s.db.Where("year = ? AND month = ?", year, month).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCycleNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cycle_id = ?", cycle.ID).Delete(&models.DailyLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cycle_id = ?", cycle.ID).Delete(&models.OtherExpense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cycle).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// resolveConfigVersion returns the cycle's pinned version, or the latest
// created one when the cycle has none.
func (s *cycleService) resolveConfigVersion(cycle *models.Cycle) (*models.ConfigVersion, error) {
	if cycle.ConfigVersionID != nil {
		var version models.ConfigVersion
		if err := s.db.First(&version, *cycle.ConfigVersionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrConfigVersionNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &version, nil
	}
	return s.versions.GetLatestConfigVersion()
}
