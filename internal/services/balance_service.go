package services

import (
	"time"

	"gorm.io/gorm"

	"dompet/internal/budget"
	apperrors "dompet/internal/errors"
	"dompet/internal/models"
)

// balanceService computes the running savings/balance reports across all
// cycles. Each cycle is priced with its own resolved configuration
// version, so editing rates later never rewrites a pinned cycle.
type balanceService struct {
	db       *gorm.DB
	settings SettingsServicer
	versions ConfigVersionServicer
	loc      *time.Location
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB, settings SettingsServicer, versions ConfigVersionServicer, loc *time.Location) BalanceServicer {
	if loc == nil {
		loc = time.Local
	}
	return &balanceService{db: db, settings: settings, versions: versions, loc: loc}
}

// GetSavings returns the all-time running balance under the policy.
func (s *balanceService) GetSavings(policy budget.BalancePolicy) (*SavingsReport, error) {
	setting, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	cycles, err := s.loadCycleData()
	if err != nil {
		return nil, err
	}

	var variance int64
	for _, c := range cycles {
		variance += budget.CycleVariance(c, policy)
	}

	return &SavingsReport{
		InitialSavings: setting.InitialSavings,
		FilledVariance: variance,
		TotalSavings:   setting.InitialSavings + variance,
	}, nil
}

// GetBalanceAt splits the running balance at the target cycle label.
func (s *balanceService) GetBalanceAt(year, month int, policy budget.BalancePolicy) (*budget.Balance, error) {
	setting, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	cycles, err := s.loadCycleData()
	if err != nil {
		return nil, err
	}

	b := budget.BalanceAt(setting.InitialSavings, cycles, budget.YearMonth{Year: year, Month: month}, policy)
	return &b, nil
}

// loadCycleData assembles every cycle with its resolved configuration
// and daily logs, in chronological order.
func (s *balanceService) loadCycleData() ([]budget.CycleData, error) {
	var cycles []models.Cycle
	if err := s.db.Order("year ASC, month ASC").Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(cycles) == 0 {
		return nil, nil
	}

	// Cycles without a pinned version share the latest one; resolve it
	// once up front.
	var latest *models.ConfigVersion
	for i := range cycles {
		if cycles[i].ConfigVersionID == nil {
			v, err := s.versions.GetLatestConfigVersion()
			if err != nil {
				return nil, err
			}
			latest = v
			break
		}
	}

	versionCache := map[uint]budget.Config{}
	data := make([]budget.CycleData, 0, len(cycles))

	for i := range cycles {
		c := &cycles[i]

		var cfg budget.Config
		if c.ConfigVersionID == nil {
			cfg = latest.Snapshot()
		} else if cached, ok := versionCache[*c.ConfigVersionID]; ok {
			cfg = cached
		} else {
			var version models.ConfigVersion
			if err := s.db.First(&version, *c.ConfigVersionID).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			cfg = version.Snapshot()
			versionCache[*c.ConfigVersionID] = cfg
		}

		var logs []models.DailyLog
		if err := s.db.Where("cycle_id = ?", c.ID).Order("log_date ASC").Find(&logs).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		records := make([]budget.LogRecord, 0, len(logs))
		for j := range logs {
			rec, err := logs[j].Record(s.loc)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCorruptDate, err)
			}
			records = append(records, rec)
		}

		data = append(data, budget.CycleData{
			YearMonth: c.YearMonth(),
			Config:    cfg,
			Logs:      records,
		})
	}

	return data, nil
}
