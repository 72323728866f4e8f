package budget

// LogRecord is the persisted shape of one daily log as handed over by
// the storage layer. ActualAmount nil means "not yet recorded", which is
// distinct from a recorded zero.
type LogRecord struct {
	ID           uint
	CycleID      uint
	Date         Date
	IsWFO        bool
	ActualAmount *int64
	CustomLabel  *string
	CustomBudget *int64
}

// DayEntry is a LogRecord enriched with everything derived: day of week
// (0=Sun..6=Sat), Indonesian day name, detail label, resolved budget,
// and variance. Variance is nil while the day is unfilled.
type DayEntry struct {
	ID           uint    `json:"id"`
	CycleID      uint    `json:"cycle_id"`
	LogDate      string  `json:"log_date"`
	IsWFO        bool    `json:"is_wfo"`
	ActualAmount *int64  `json:"actual_amount"`
	CustomLabel  *string `json:"custom_label"`
	CustomBudget *int64  `json:"custom_budget"`
	DayOfWeek    int     `json:"day_of_week"`
	DayName      string  `json:"day_name"`
	Detail       string  `json:"detail"`
	Budget       int64   `json:"budget"`
	Variance     *int64  `json:"variance"`
}

// ProjectEntry turns one persisted log into a fully computed DayEntry
// under the given configuration snapshot. The log date is re-emitted in
// canonical "YYYY-MM-DD" form so equality checks against other dates are
// plain string comparisons.
func ProjectEntry(log LogRecord, cfg Config) DayEntry {
	day := DayInput{
		Date:         log.Date,
		IsWFO:        log.IsWFO,
		CustomLabel:  log.CustomLabel,
		CustomBudget: log.CustomBudget,
	}

	b := ResolveBudget(day, cfg)

	var variance *int64
	if log.ActualAmount != nil {
		v := b - *log.ActualAmount
		variance = &v
	}

	return DayEntry{
		ID:           log.ID,
		CycleID:      log.CycleID,
		LogDate:      log.Date.String(),
		IsWFO:        log.IsWFO,
		ActualAmount: log.ActualAmount,
		CustomLabel:  log.CustomLabel,
		CustomBudget: log.CustomBudget,
		DayOfWeek:    log.Date.Weekday(),
		DayName:      log.Date.DayName(),
		Detail:       ResolveDetail(day),
		Budget:       b,
		Variance:     variance,
	}
}

// ProjectEntries projects a slice of logs in order.
func ProjectEntries(logs []LogRecord, cfg Config) []DayEntry {
	entries := make([]DayEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, ProjectEntry(log, cfg))
	}
	return entries
}
