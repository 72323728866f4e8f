package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"dompet/internal/budget"
	"dompet/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestConfigVersion creates a version with the standard defaults.
func CreateTestConfigVersion(t *testing.T, db *gorm.DB) *models.ConfigVersion {
	t.Helper()

	version := &models.ConfigVersion{
		Name:                fmt.Sprintf("Version %d", nextID()),
		WeekdayBudget:       models.DefaultWeekdayBudget,
		WeekendBudget:       models.DefaultWeekendBudget,
		CarboLoadingBudget:  models.DefaultCarboLoadingBudget,
		ParkingPerDay:       models.DefaultParkingPerDay,
		GasPerFill:          models.DefaultGasPerFill,
		GasFillIntervalDays: models.DefaultGasFillIntervalDays,
	}
	if err := db.Create(version).Error; err != nil {
		t.Fatalf("failed to create test config version: %v", err)
	}
	return version
}

// CreateTestCycle creates a cycle for (year, month) with its daily-log
// placeholders, pinned to the given version.
func CreateTestCycle(t *testing.T, db *gorm.DB, year, month int, versionID *uint) *models.Cycle {
	t.Helper()

	start := budget.CycleStart(year, month)
	end := budget.CycleEnd(year, month)

	cycle := &models.Cycle{
		Year:            year,
		Month:           month,
		StartDate:       start.String(),
		EndDate:         end.String(),
		ConfigVersionID: versionID,
	}
	if err := db.Create(cycle).Error; err != nil {
		t.Fatalf("failed to create test cycle: %v", err)
	}

	for _, d := range budget.CycleDates(start, end) {
		log := models.DailyLog{CycleID: cycle.ID, LogDate: d.String()}
		if err := db.Create(&log).Error; err != nil {
			t.Fatalf("failed to create test daily log: %v", err)
		}
	}
	return cycle
}

// CreateTestOtherExpense creates a parking expense in the cycle.
func CreateTestOtherExpense(t *testing.T, db *gorm.DB, cycleID uint, amount int64) *models.OtherExpense {
	t.Helper()

	expense := &models.OtherExpense{
		CycleID:     cycleID,
		Category:    models.ExpenseCategoryParking,
		Amount:      amount,
		ExpenseDate: "2026-03-02",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// FillDailyLog sets the actual amount on the cycle's log for a date.
func FillDailyLog(t *testing.T, db *gorm.DB, cycleID uint, date string, amount int64) {
	t.Helper()

	res := db.Model(&models.DailyLog{}).
		Where("cycle_id = ? AND log_date = ?", cycleID, date).
		Update("actual_amount", amount)
	if res.Error != nil {
		t.Fatalf("failed to fill daily log: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		t.Fatalf("no daily log for cycle %d on %s", cycleID, date)
	}
}

// SetInitialSavings writes the singleton settings row.
func SetInitialSavings(t *testing.T, db *gorm.DB, amount int64) {
	t.Helper()

	if err := db.Where("id = ?", models.AppSettingID).Delete(&models.AppSetting{}).Error; err != nil {
		t.Fatalf("failed to reset settings: %v", err)
	}
	setting := &models.AppSetting{Base: models.Base{ID: models.AppSettingID}, InitialSavings: amount}
	if err := db.Create(setting).Error; err != nil {
		t.Fatalf("failed to set initial savings: %v", err)
	}
}
