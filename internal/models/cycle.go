package models

import (
	"time"

	"dompet/internal/budget"
)

// Cycle is one budgeting period, keyed by (year, month) where the month
// is the cycle label: cycle "March 2026" spans Feb 28 through Mar 27.
// Start and end dates are derived from the label but persisted as
// canonical "YYYY-MM-DD" strings for query convenience. Dates live in
// text columns on purpose: a DATE column round-tripping through the
// driver's timezone handling is exactly the bug class this avoids.
type Cycle struct {
	Base
	Year            int    `gorm:"not null;uniqueIndex:idx_cycles_year_month" json:"year"`
	Month           int    `gorm:"not null;uniqueIndex:idx_cycles_year_month" json:"month"`
	StartDate       string `gorm:"size:10;not null" json:"start_date"`
	EndDate         string `gorm:"size:10;not null" json:"end_date"`
	ConfigVersionID *uint  `json:"config_version_id"`

	ConfigVersion *ConfigVersion `gorm:"foreignKey:ConfigVersionID" json:"config_version,omitempty"`
}

// YearMonth returns the cycle's label.
func (c *Cycle) YearMonth() budget.YearMonth {
	return budget.YearMonth{Year: c.Year, Month: c.Month}
}

// Span parses the persisted start and end dates.
func (c *Cycle) Span(loc *time.Location) (start, end budget.Date, err error) {
	start, err = budget.ParseDate(c.StartDate, loc)
	if err != nil {
		return
	}
	end, err = budget.ParseDate(c.EndDate, loc)
	return
}
