package models

import "dompet/internal/budget"

// Default rate parameters applied when a version is created without
// explicit values, in rupiah.
const (
	DefaultWeekdayBudget       = 80000
	DefaultWeekendBudget       = 70000
	DefaultCarboLoadingBudget  = 115000
	DefaultParkingPerDay       = 5000
	DefaultGasPerFill          = 50000
	DefaultGasFillIntervalDays = 3
)

// ConfigVersion is a named snapshot of budget rate parameters. Cycles
// pin a version so that editing rates later never rewrites history;
// cycles without a pinned version resolve to the most recently created
// one at read time.
type ConfigVersion struct {
	Base
	Name                string `gorm:"not null" json:"name"`
	WeekdayBudget       int64  `gorm:"not null" json:"weekday_budget"`
	WeekendBudget       int64  `gorm:"not null" json:"weekend_budget"`
	CarboLoadingBudget  int64  `gorm:"not null" json:"carbo_loading_budget"`
	ParkingPerDay       int64  `gorm:"not null" json:"parking_per_day"`
	GasPerFill          int64  `gorm:"not null" json:"gas_per_fill"`
	GasFillIntervalDays int    `gorm:"not null" json:"gas_fill_interval_days"`
}

// Snapshot converts the version into the engine's immutable config value.
func (v *ConfigVersion) Snapshot() budget.Config {
	return budget.Config{
		WeekdayBudget:       v.WeekdayBudget,
		WeekendBudget:       v.WeekendBudget,
		CarboLoadingBudget:  v.CarboLoadingBudget,
		ParkingPerDay:       v.ParkingPerDay,
		GasPerFill:          v.GasPerFill,
		GasFillIntervalDays: v.GasFillIntervalDays,
	}
}
