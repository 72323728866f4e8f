package budget

// Summary aggregates one cycle's projected entries plus its parking/gas
// cost estimates. ParkingBudget and GasBudget are estimates derived from
// the config, surfaced next to whatever other-expense records the user
// actually logged; the two are deliberately independent.
type Summary struct {
	BudgetSum     int64 `json:"budget_sum"`
	ActualSum     int64 `json:"actual_sum"`
	TotalVariance int64 `json:"total_variance"`
	ParkingDays   int   `json:"parking_days"`
	ParkingBudget int64 `json:"parking_budget"`
	GasDays       int   `json:"gas_days"`
	GasBudget     int64 `json:"gas_budget"`
}

// Summarize computes the cycle summary. Unfilled days contribute their
// budget to BudgetSum but nothing to ActualSum. Parking days are
// non-WFO weekdays (Mon-Fri). Gas days span the whole cycle regardless
// of weekday; GasBudget rounds half-up and degrades to zero when the
// fill interval is not positive.
func Summarize(entries []DayEntry, start, end Date, cfg Config) Summary {
	var s Summary
	for _, e := range entries {
		s.BudgetSum += e.Budget
		if e.ActualAmount != nil {
			s.ActualSum += *e.ActualAmount
		}
		if e.DayOfWeek >= 1 && e.DayOfWeek <= 5 && !e.IsWFO {
			s.ParkingDays++
		}
	}
	s.TotalVariance = s.BudgetSum - s.ActualSum
	s.ParkingBudget = int64(s.ParkingDays) * cfg.ParkingPerDay

	s.GasDays = CountCycleDays(start, end)
	if cfg.GasFillIntervalDays > 0 {
		interval := int64(cfg.GasFillIntervalDays)
		s.GasBudget = (int64(s.GasDays)*cfg.GasPerFill + interval/2) / interval
	}
	return s
}
