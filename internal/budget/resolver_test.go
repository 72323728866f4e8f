package budget

import "testing"

var testConfig = Config{
	WeekdayBudget:       80000,
	WeekendBudget:       70000,
	CarboLoadingBudget:  115000,
	ParkingPerDay:       5000,
	GasPerFill:          50000,
	GasFillIntervalDays: 3,
}

func ptrInt64(v int64) *int64 { return &v }
func ptrStr(s string) *string { return &s }

// Fixed dates in the March 2026 cycle: Monday, Friday, Saturday, Sunday.
var (
	monday   = Date{2026, 3, 2}
	friday   = Date{2026, 3, 6}
	saturday = Date{2026, 3, 7}
	sunday   = Date{2026, 3, 8}
)

func TestResolveBudgetByWeekday(t *testing.T) {
	cases := []struct {
		name string
		date Date
		want int64
	}{
		{"monday_weekday", monday, 80000},
		{"friday_carbo_loading", friday, 115000},
		{"saturday_weekend", saturday, 70000},
		{"sunday_weekend", sunday, 70000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveBudget(DayInput{Date: tc.date}, testConfig)
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestResolveBudgetWFO(t *testing.T) {
	for _, date := range []Date{monday, friday, saturday, sunday} {
		if got := ResolveBudget(DayInput{Date: date, IsWFO: true}, testConfig); got != 0 {
			t.Errorf("%s: expected 0 for WFO day, got %d", date, got)
		}
	}
}

func TestResolveBudgetCustomOverride(t *testing.T) {
	t.Run("custom_beats_config", func(t *testing.T) {
		got := ResolveBudget(DayInput{Date: friday, CustomBudget: ptrInt64(30000)}, testConfig)
		if got != 30000 {
			t.Errorf("expected 30000, got %d", got)
		}
	})

	t.Run("custom_beats_wfo", func(t *testing.T) {
		got := ResolveBudget(DayInput{Date: friday, IsWFO: true, CustomBudget: ptrInt64(30000)}, testConfig)
		if got != 30000 {
			t.Errorf("expected 30000, got %d", got)
		}
	})

	t.Run("explicit_zero_counts", func(t *testing.T) {
		got := ResolveBudget(DayInput{Date: saturday, CustomBudget: ptrInt64(0)}, testConfig)
		if got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
		// Zero override on a WFO day happens to match the WFO value but
		// it is the override that wins.
		got = ResolveBudget(DayInput{Date: saturday, IsWFO: true, CustomBudget: ptrInt64(0)}, testConfig)
		if got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestResolveDetail(t *testing.T) {
	cases := []struct {
		name string
		day  DayInput
		want string
	}{
		{"plain_weekday", DayInput{Date: monday}, ""},
		{"friday", DayInput{Date: friday}, DetailCarboLoading},
		{"wfo", DayInput{Date: monday, IsWFO: true}, DetailWFO},
		{"wfo_friday", DayInput{Date: friday, IsWFO: true}, DetailWFO},
		{"custom_label_beats_wfo", DayInput{Date: monday, IsWFO: true, CustomLabel: ptrStr("Cuti")}, "Cuti"},
		{"custom_label_beats_friday", DayInput{Date: friday, CustomLabel: ptrStr("Dinner out")}, "Dinner out"},
		{"empty_custom_label_ignored", DayInput{Date: friday, CustomLabel: ptrStr("")}, DetailCarboLoading},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDetail(tc.day); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// The label and budget override axes are independent. Exercise every
// combination of {custom budget, custom label} x {WFO} on a Friday,
// where all three resolution tiers differ.
func TestOverrideAxesIndependent(t *testing.T) {
	cases := []struct {
		name         string
		customBudget *int64
		customLabel  *string
		isWFO        bool
		wantBudget   int64
		wantDetail   string
	}{
		{"none_plain", nil, nil, false, 115000, DetailCarboLoading},
		{"none_wfo", nil, nil, true, 0, DetailWFO},
		{"budget_only_plain", ptrInt64(25000), nil, false, 25000, DetailCarboLoading},
		{"budget_only_wfo", ptrInt64(25000), nil, true, 25000, DetailWFO},
		{"label_only_plain", nil, ptrStr("Traktir"), false, 115000, "Traktir"},
		{"label_only_wfo", nil, ptrStr("Traktir"), true, 0, "Traktir"},
		{"both_plain", ptrInt64(25000), ptrStr("Traktir"), false, 25000, "Traktir"},
		{"both_wfo", ptrInt64(25000), ptrStr("Traktir"), true, 25000, "Traktir"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := DayInput{
				Date:         friday,
				IsWFO:        tc.isWFO,
				CustomLabel:  tc.customLabel,
				CustomBudget: tc.customBudget,
			}
			if got := ResolveBudget(day, testConfig); got != tc.wantBudget {
				t.Errorf("budget: expected %d, got %d", tc.wantBudget, got)
			}
			if got := ResolveDetail(day); got != tc.wantDetail {
				t.Errorf("detail: expected %q, got %q", tc.wantDetail, got)
			}
		})
	}
}
