package models

import (
	"time"

	"dompet/internal/budget"
)

// DailyLog is one row per calendar date within a cycle's span, created
// as a placeholder when the cycle is created. ActualAmount nil means
// "not yet recorded", distinct from a recorded zero. CustomLabel and
// CustomBudget are independent per-day overrides.
type DailyLog struct {
	Base
	CycleID      uint    `gorm:"not null;index" json:"cycle_id"`
	LogDate      string  `gorm:"size:10;not null" json:"log_date"`
	IsWFO        bool    `gorm:"not null;default:false" json:"is_wfo"`
	ActualAmount *int64  `json:"actual_amount"`
	CustomLabel  *string `json:"custom_label"`
	CustomBudget *int64  `json:"custom_budget"`

	Cycle Cycle `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
}

// Record converts the persisted row into the engine's input shape.
// Fails on an unparsable log date; a row that cannot be positioned
// within a cycle must not be silently defaulted.
func (l *DailyLog) Record(loc *time.Location) (budget.LogRecord, error) {
	d, err := budget.ParseDate(l.LogDate, loc)
	if err != nil {
		return budget.LogRecord{}, err
	}
	return budget.LogRecord{
		ID:           l.ID,
		CycleID:      l.CycleID,
		Date:         d,
		IsWFO:        l.IsWFO,
		ActualAmount: l.ActualAmount,
		CustomLabel:  l.CustomLabel,
		CustomBudget: l.CustomBudget,
	}, nil
}
