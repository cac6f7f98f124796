package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	// Shortfall thresholds in minutes below the day target.
	WarningThresholdMinutes  = 15
	CriticalThresholdMinutes = 60
)

// Severity of a day's shortfall against its target.
type Severity string

const (
	SeverityNone     Severity = "NONE"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Month identifies a calendar month. Index is 0-based (0 = January).
type Month struct {
	Year  int
	Index int
}

// MonthOf returns the month containing ref, read in ref's location.
func MonthOf(ref time.Time) Month {
	return Month{Year: ref.Year(), Index: int(ref.Month()) - 1}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return MonthOf(t), nil
}

func (m Month) Valid() bool {
	return m.Year >= 1 && m.Index >= 0 && m.Index <= 11
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Index+1)
}

// Days is the number of days in the month.
func (m Month) Days() int {
	return DaysInMonth(m.Year, m.Index)
}

// Range returns the first and last ISO dates of the month.
func (m Month) Range() (from, to string) {
	return isoDate(m.Year, m.Index, 1), isoDate(m.Year, m.Index, m.Days())
}

// DaysInMonth takes day 0 of the following month, which time.Date normalizes
// to the last day of monthIndex, leap years included.
func DaysInMonth(year, monthIndex int) int {
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

func isoDate(year, monthIndex, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
}

func weekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

// IsWeekend reports whether an ISO date is a Saturday or Sunday. Years wider
// than four digits are accepted. Anything unparsable is not a weekend.
func IsWeekend(date string) bool {
	t, ok := parseISODate(date)
	return ok && weekend(t)
}

// parseISODate reads YYYY-MM-DD from its components at UTC midnight.
func parseISODate(date string) (time.Time, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil || year < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > DaysInMonth(year, month-1) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// placeholder stands in for a day the backend returned nothing for.
func placeholder(m Month, day int) DailySummary {
	status := DayStatusNoRecord
	if weekend(time.Date(m.Year, time.Month(m.Index+1), day, 0, 0, 0, 0, time.UTC)) {
		status = DayStatusWeekend
	}
	return DailySummary{
		Date:          isoDate(m.Year, m.Index, day),
		CheckInTime:   NoTime,
		CheckOutTime:  NoTime,
		MinutesWorked: 0,
		Status:        status,
	}
}

// ReconcileMonth expands a sparse set of summaries into one entry per day of
// the month, ascending. Entries outside the month are ignored and duplicate
// dates resolve to the last one supplied. An invalid month yields nil.
func ReconcileMonth(summaries []DailySummary, m Month) []DailySummary {
	if !m.Valid() {
		return nil
	}

	byDate := make(map[string]DailySummary, len(summaries))
	for _, s := range summaries {
		byDate[s.Date] = s
	}

	total := m.Days()
	days := make([]DailySummary, 0, total)
	for d := 1; d <= total; d++ {
		date := isoDate(m.Year, m.Index, d)
		if s, ok := byDate[date]; ok {
			days = append(days, s)
			continue
		}
		days = append(days, placeholder(m, d))
	}
	return days
}

// Classification is the shortfall verdict for one day.
type Classification struct {
	// Applies is false for weekends, leave, days without a target and days
	// without any record.
	Applies  bool
	Deficit  int
	Severity Severity
}

// Classify compares worked minutes against the day target.
func Classify(day DailySummary) Classification {
	weekend := day.Status == DayStatusWeekend || IsWeekend(day.Date)
	if weekend || day.Status == DayStatusLeave || day.MinutesTarget == nil || !day.Status.HasRecord() {
		return Classification{Severity: SeverityNone}
	}

	deficit := *day.MinutesTarget - day.MinutesWorked
	c := Classification{Applies: true, Deficit: deficit, Severity: SeverityNone}
	switch {
	case deficit >= CriticalThresholdMinutes:
		c.Severity = SeverityCritical
	case deficit >= WarningThresholdMinutes:
		c.Severity = SeverityWarning
	}
	return c
}

// FormatMinutes renders a non-negative minute count as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekStart returns the ISO date of the Monday on or before ref.
func WeekStart(ref time.Time) string {
	y, m, d := ref.Date()
	back := (int(ref.Weekday()) + 6) % 7
	return time.Date(y, m, d-back, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// WeeklyHours sums worked minutes from the ISO week start of ref onwards and
// returns hours rounded half away from zero to one decimal.
func WeeklyHours(days []DailySummary, ref time.Time) decimal.Decimal {
	start := WeekStart(ref)
	minutes := 0
	for _, d := range days {
		if d.Date >= start {
			minutes += d.MinutesWorked
		}
	}
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(1)
}

// Find returns the summary for date, if any.
func Find(days []DailySummary, date string) *DailySummary {
	for i := range days {
		if days[i].Date == date {
			return &days[i]
		}
	}
	return nil
}
