package budget

// Config is an immutable snapshot of one configuration version's rate
// parameters. Amounts are rupiah, which has no subunit.
type Config struct {
	WeekdayBudget       int64
	WeekendBudget       int64
	CarboLoadingBudget  int64
	ParkingPerDay       int64
	GasPerFill          int64
	GasFillIntervalDays int
}

// DetailWFO and DetailCarboLoading are the generated detail labels.
const (
	DetailWFO          = "WFO"
	DetailCarboLoading = "Carbo Loading"
)

// DayInput carries the per-day facts budget resolution depends on.
// CustomBudget and CustomLabel are independent overrides: either may be
// set without the other.
type DayInput struct {
	Date         Date
	IsWFO        bool
	CustomLabel  *string
	CustomBudget *int64
}

// ResolveBudget computes the budget amount for one day. Priority, top
// down: a custom budget override (an explicit zero counts), the WFO flag
// (forces zero), then the config by day of week with Friday as carbo
// loading and Saturday/Sunday as weekend.
func ResolveBudget(day DayInput, cfg Config) int64 {
	if day.CustomBudget != nil {
		return *day.CustomBudget
	}
	if day.IsWFO {
		return 0
	}
	switch day.Date.Weekday() {
	case 5:
		return cfg.CarboLoadingBudget
	case 0, 6:
		return cfg.WeekendBudget
	default:
		return cfg.WeekdayBudget
	}
}

// ResolveDetail computes the detail label for one day. Priority: custom
// label, "WFO", "Carbo Loading" on Fridays, otherwise empty. A custom
// label overrides only the label; the budget still follows ResolveBudget.
func ResolveDetail(day DayInput) string {
	if day.CustomLabel != nil && *day.CustomLabel != "" {
		return *day.CustomLabel
	}
	if day.IsWFO {
		return DetailWFO
	}
	if day.Date.Weekday() == 5 {
		return DetailCarboLoading
	}
	return ""
}
