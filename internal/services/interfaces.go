package services

import (
	"dompet/internal/budget"
	"dompet/internal/models"
	"dompet/internal/pagination"
)

// ConfigVersionParams carries optional rate parameters; nil fields fall
// back to defaults on create and are left untouched on update.
type ConfigVersionParams struct {
	Name                *string
	WeekdayBudget       *int64
	WeekendBudget       *int64
	CarboLoadingBudget  *int64
	ParkingPerDay       *int64
	GasPerFill          *int64
	GasFillIntervalDays *int
}

// ConfigVersionServicer defines the contract for configuration-version business logic.
type ConfigVersionServicer interface {
	CreateConfigVersion(name string, params ConfigVersionParams) (*models.ConfigVersion, error)
	GetConfigVersions() ([]models.ConfigVersion, error)
	GetLatestConfigVersion() (*models.ConfigVersion, error)
	UpdateConfigVersion(id uint, params ConfigVersionParams) (*models.ConfigVersion, error)
	DeleteConfigVersion(id uint) error
}

// SettingsServicer defines the contract for the singleton app settings row.
type SettingsServicer interface {
	GetSettings() (*models.AppSetting, error)
	UpdateInitialSavings(amount int64) (*models.AppSetting, error)
}

// CycleDetail is the full computed view of one cycle: the persisted
// record, its projected day entries, the aggregate summary, the resolved
// configuration version, and the cycle's other expenses.
type CycleDetail struct {
	Cycle         models.Cycle          `json:"cycle"`
	Entries       []budget.DayEntry     `json:"entries"`
	Summary       budget.Summary        `json:"summary"`
	Config        models.ConfigVersion  `json:"config"`
	OtherExpenses []models.OtherExpense `json:"other_expenses"`
}

// CycleServicer defines the contract for cycle business logic.
type CycleServicer interface {
	CreateCycle(year, month int, configVersionID *uint) (*models.Cycle, int, error)
	GetCycles(page pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error)
	GetCycleDetail(year, month int) (*CycleDetail, error)
	DeleteCycle(year, month int) error
}

// DailyLogServicer defines the contract for daily log updates. Updates
// are partial: only keys present in the map change, and a nil value
// writes NULL (clearing actual_amount or an override).
type DailyLogServicer interface {
	UpdateDailyLog(id uint, updates map[string]interface{}) (*models.DailyLog, error)
	BulkSetWFO(cycleID uint, wfoDates []string) ([]models.DailyLog, error)
}

// OtherExpenseServicer defines the contract for ad-hoc expense business logic.
type OtherExpenseServicer interface {
	CreateOtherExpense(cycleID uint, category models.ExpenseCategory, amount int64, expenseDate string, description *string) (*models.OtherExpense, error)
	UpdateOtherExpense(id uint, updates map[string]interface{}) (*models.OtherExpense, error)
	DeleteOtherExpense(id uint) error
}

// SavingsReport is the running balance over every cycle.
type SavingsReport struct {
	InitialSavings int64 `json:"initial_savings"`
	FilledVariance int64 `json:"filled_variance"`
	TotalSavings   int64 `json:"total_savings"`
}

// BalanceServicer defines the contract for the running balance reports.
type BalanceServicer interface {
	GetSavings(policy budget.BalancePolicy) (*SavingsReport, error)
	GetBalanceAt(year, month int, policy budget.BalancePolicy) (*budget.Balance, error)
}
