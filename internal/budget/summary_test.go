package budget

import "testing"

func TestSummarize(t *testing.T) {
	start := CycleStart(2026, 3)
	end := CycleEnd(2026, 3)

	t.Run("full_cycle_gas_estimate", func(t *testing.T) {
		// 28-day cycle, 50000 per fill every 3 days:
		// round(28 * 50000 / 3) = 466667.
		s := Summarize(nil, start, end, testConfig)
		if s.GasDays != 28 {
			t.Errorf("expected 28 gas days, got %d", s.GasDays)
		}
		if s.GasBudget != 466667 {
			t.Errorf("expected gas budget 466667, got %d", s.GasBudget)
		}
	})

	t.Run("zero_interval_degrades_to_zero", func(t *testing.T) {
		cfg := testConfig
		cfg.GasFillIntervalDays = 0
		s := Summarize(nil, start, end, cfg)
		if s.GasBudget != 0 {
			t.Errorf("expected 0 gas budget, got %d", s.GasBudget)
		}
		cfg.GasFillIntervalDays = -2
		if s := Summarize(nil, start, end, cfg); s.GasBudget != 0 {
			t.Errorf("expected 0 gas budget for negative interval, got %d", s.GasBudget)
		}
	})

	t.Run("sums_and_parking", func(t *testing.T) {
		logs := []LogRecord{
			{Date: monday, ActualAmount: ptrInt64(60000)},   // Mon, filled
			{Date: Date{2026, 3, 3}},                        // Tue, unfilled
			{Date: Date{2026, 3, 4}, IsWFO: true},           // Wed, WFO
			{Date: friday, ActualAmount: ptrInt64(120000)},  // Fri
			{Date: saturday, ActualAmount: ptrInt64(70000)}, // Sat
			{Date: sunday},                                  // Sun, unfilled
		}
		entries := ProjectEntries(logs, testConfig)
		s := Summarize(entries, start, end, testConfig)

		// 80000 + 80000 + 0 + 115000 + 70000 + 70000
		if s.BudgetSum != 415000 {
			t.Errorf("expected budget sum 415000, got %d", s.BudgetSum)
		}
		// Unfilled days contribute nothing to the actual sum.
		if s.ActualSum != 250000 {
			t.Errorf("expected actual sum 250000, got %d", s.ActualSum)
		}
		if s.TotalVariance != 165000 {
			t.Errorf("expected total variance 165000, got %d", s.TotalVariance)
		}
		// Parking: Mon + Tue + Fri (Wed is WFO, weekend days excluded).
		if s.ParkingDays != 3 {
			t.Errorf("expected 3 parking days, got %d", s.ParkingDays)
		}
		if s.ParkingBudget != 15000 {
			t.Errorf("expected parking budget 15000, got %d", s.ParkingBudget)
		}
	})

	t.Run("budget_counts_even_when_unfilled", func(t *testing.T) {
		logs := []LogRecord{{Date: monday}, {Date: friday}}
		entries := ProjectEntries(logs, testConfig)
		s := Summarize(entries, start, end, testConfig)
		if s.BudgetSum != 195000 {
			t.Errorf("expected budget sum 195000, got %d", s.BudgetSum)
		}
		if s.ActualSum != 0 {
			t.Errorf("expected actual sum 0, got %d", s.ActualSum)
		}
	})
}

func TestGasRounding(t *testing.T) {
	cases := []struct {
		days     int
		perFill  int64
		interval int
		want     int64
	}{
		{28, 50000, 3, 466667},
		{30, 50000, 3, 500000},
		{31, 45000, 4, 348750},
		{29, 50000, 7, 207143}, // 207142.86 rounds up
	}
	for _, tc := range cases {
		cfg := Config{GasPerFill: tc.perFill, GasFillIntervalDays: tc.interval}
		start := Date{2026, 2, 28}
		end := start.AddDays(tc.days - 1)
		s := Summarize(nil, start, end, cfg)
		if s.GasBudget != tc.want {
			t.Errorf("%d days / %d interval: expected %d, got %d",
				tc.days, tc.interval, tc.want, s.GasBudget)
		}
	}
}
