package budget

// BalancePolicy selects how a cycle's contribution to the running
// balance is measured. The two policies agree only when every day of the
// cycle has a recorded amount; with unfilled days they diverge on
// purpose, so callers must pick one explicitly.
type BalancePolicy int

const (
	// PolicyFilledVariance sums budget-minus-actual over filled days
	// only. Unfilled days are pending: they move nothing yet.
	PolicyFilledVariance BalancePolicy = iota

	// PolicyBudgetMinusActual takes the cycle's full budget sum minus
	// its actual sum, treating unfilled days' budget as already spent
	// from the account.
	PolicyBudgetMinusActual
)

// CycleData is one cycle's input to the balance calculation: its label,
// the configuration version resolved for it, and its daily logs.
type CycleData struct {
	YearMonth YearMonth
	Config    Config
	Logs      []LogRecord
}

// Balance is the running account position relative to a target cycle.
type Balance struct {
	BalanceAtMonthStart  int64 `json:"balance_at_month_start"`
	CurrentMonthVariance int64 `json:"current_month_variance"`
	CurrentBalance       int64 `json:"current_balance"`
}

// CycleVariance computes one cycle's contribution under the policy.
func CycleVariance(c CycleData, policy BalancePolicy) int64 {
	var total int64
	switch policy {
	case PolicyBudgetMinusActual:
		for _, log := range c.Logs {
			total += ResolveBudget(DayInput{
				Date:         log.Date,
				IsWFO:        log.IsWFO,
				CustomLabel:  log.CustomLabel,
				CustomBudget: log.CustomBudget,
			}, c.Config)
			if log.ActualAmount != nil {
				total -= *log.ActualAmount
			}
		}
	default:
		for _, log := range c.Logs {
			if log.ActualAmount == nil {
				continue
			}
			b := ResolveBudget(DayInput{
				Date:         log.Date,
				IsWFO:        log.IsWFO,
				CustomLabel:  log.CustomLabel,
				CustomBudget: log.CustomBudget,
			}, c.Config)
			total += b - *log.ActualAmount
		}
	}
	return total
}

// TotalBalance is the initial savings plus every cycle's variance.
// Cycles must be in chronological order, though the sum itself does not
// depend on it.
func TotalBalance(initialSavings int64, cycles []CycleData, policy BalancePolicy) int64 {
	total := initialSavings
	for _, c := range cycles {
		total += CycleVariance(c, policy)
	}
	return total
}

// BalanceAt splits the running balance at a target cycle: the balance
// going into the target month (initial savings plus all strictly earlier
// cycles), the variance inside the target month (zero when the target
// cycle is absent), and their sum.
func BalanceAt(initialSavings int64, cycles []CycleData, target YearMonth, policy BalancePolicy) Balance {
	b := Balance{BalanceAtMonthStart: initialSavings}
	for _, c := range cycles {
		switch {
		case c.YearMonth.Before(target):
			b.BalanceAtMonthStart += CycleVariance(c, policy)
		case c.YearMonth == target:
			b.CurrentMonthVariance = CycleVariance(c, policy)
		}
	}
	b.CurrentBalance = b.BalanceAtMonthStart + b.CurrentMonthVariance
	return b
}
