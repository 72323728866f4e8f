package budget

// A cycle runs from the 28th of one calendar month through the 27th of
// the next and is labeled by the later month: cycle "March 2026" spans
// Feb 28 through Mar 27, 2026.

// YearMonth identifies a cycle by its label month.
type YearMonth struct {
	Year  int
	Month int
}

// Before reports whether ym is chronologically before other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// CycleStart returns the 28th of the month preceding (year, month),
// rolling the year back across the January boundary.
func CycleStart(year, month int) Date {
	prevMonth := month - 1
	prevYear := year
	if prevMonth < 1 {
		prevMonth = 12
		prevYear--
	}
	return Date{Year: prevYear, Month: prevMonth, Day: 28}
}

// CycleEnd returns the 27th of (year, month).
func CycleEnd(year, month int) Date {
	return Date{Year: year, Month: month, Day: 27}
}

// CycleDates returns every date from start through end inclusive.
func CycleDates(start, end Date) []Date {
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// CountCycleDays returns the inclusive day count of the span.
func CountCycleDays(start, end Date) int {
	return DaysBetween(start, end) + 1
}

// CurrentCycle returns the cycle label that today falls in. From the
// 28th onward spending already counts toward the next month's window.
func CurrentCycle(today Date) YearMonth {
	ym := YearMonth{Year: today.Year, Month: today.Month}
	if today.Day >= 28 {
		ym = NextCycle(ym.Year, ym.Month)
	}
	return ym
}

// PrevCycle returns the cycle label one month earlier.
func PrevCycle(year, month int) YearMonth {
	month--
	if month < 1 {
		month = 12
		year--
	}
	return YearMonth{Year: year, Month: month}
}

// NextCycle returns the cycle label one month later.
func NextCycle(year, month int) YearMonth {
	month++
	if month > 12 {
		month = 1
		year++
	}
	return YearMonth{Year: year, Month: month}
}
