package attendance

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 1, 29}, // leap February
		{2023, 1, 28},
		{1900, 1, 28}, // century, not leap
		{2000, 1, 29}, // 400-year leap
		{2025, 3, 30}, // April
		{2025, 11, 31},
		{2025, 0, 31},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.year, c.month), "DaysInMonth(%d, %d)", c.year, c.month)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend("2025-03-01"))  // Saturday
	assert.True(t, IsWeekend("2025-03-02"))  // Sunday
	assert.False(t, IsWeekend("2025-03-03")) // Monday
	assert.False(t, IsWeekend("2025-03-07")) // Friday
	assert.False(t, IsWeekend("not-a-date"))
	assert.False(t, IsWeekend("2025-02-29"))
	assert.True(t, IsWeekend("10000-01-01")) // Saturday
	assert.False(t, IsWeekend("10000-01-03"))
}

func TestReconcileMonth_Completeness(t *testing.T) {
	months := []Month{{2024, 1}, {2023, 1}, {2025, 3}, {2025, 11}, {1999, 0}}
	for _, m := range months {
		t.Run(m.String(), func(t *testing.T) {
			days := ReconcileMonth(nil, m)
			require.Len(t, days, DaysInMonth(m.Year, m.Index))
			for i, d := range days {
				assert.Equal(t, fmt.Sprintf("%s-%02d", m.String(), i+1), d.Date)
				if i > 0 {
					assert.Less(t, days[i-1].Date, d.Date)
				}
			}
		})
	}
}

func TestReconcileMonth_LeapBoundaries(t *testing.T) {
	assert.Len(t, ReconcileMonth(nil, Month{2024, 1}), 29)
	assert.Len(t, ReconcileMonth(nil, Month{2023, 1}), 28)
	assert.Len(t, ReconcileMonth(nil, Month{2024, 3}), 30)
	assert.Len(t, ReconcileMonth(nil, Month{2024, 11}), 31)
}

func TestReconcileMonth_PassThroughAndPlaceholders(t *testing.T) {
	recorded := DailySummary{
		Date:          "2025-03-04",
		CheckInTime:   "08:31",
		CheckOutTime:  "16:40",
		MinutesWorked: 489,
		MinutesTarget: intPtr(480),
		Status:        DayStatusOK,
	}
	leave := DailySummary{Date: "2025-03-10", CheckInTime: NoTime, CheckOutTime: NoTime, Status: DayStatusLeave}

	days := ReconcileMonth([]DailySummary{leave, recorded}, Month{2025, 2})
	require.Len(t, days, 31)

	assert.Equal(t, recorded, days[3])
	assert.Equal(t, leave, days[9])

	sat := days[0] // 2025-03-01
	assert.Equal(t, DailySummary{Date: "2025-03-01", CheckInTime: NoTime, CheckOutTime: NoTime, Status: DayStatusWeekend}, sat)

	mon := days[2] // 2025-03-03
	assert.Equal(t, DayStatusNoRecord, mon.Status)
	assert.Equal(t, NoTime, mon.CheckInTime)
	assert.Equal(t, NoTime, mon.CheckOutTime)
	assert.Zero(t, mon.MinutesWorked)
	assert.Nil(t, mon.MinutesTarget)

	far := ReconcileMonth(nil, Month{10000, 0})
	require.Len(t, far, 31)
	assert.Equal(t, "10000-01-01", far[0].Date)
	assert.Equal(t, DayStatusWeekend, far[0].Status) // Saturday
	assert.Equal(t, DayStatusWeekend, far[1].Status)
	assert.Equal(t, DayStatusNoRecord, far[2].Status)
}

func TestReconcileMonth_IgnoresForeignAndDuplicateDates(t *testing.T) {
	input := []DailySummary{
		{Date: "2025-02-28", MinutesWorked: 100, Status: DayStatusOK},
		{Date: "2025-04-01", MinutesWorked: 100, Status: DayStatusOK},
		{Date: "garbage", MinutesWorked: 100, Status: DayStatusOK},
		{Date: "2025-03-05", MinutesWorked: 10, Status: DayStatusIncomplete},
		{Date: "2025-03-05", MinutesWorked: 20, Status: DayStatusOK},
	}
	days := ReconcileMonth(input, Month{2025, 2})
	require.Len(t, days, 31)
	assert.Equal(t, "2025-03-01", days[0].Date)
	assert.Equal(t, "2025-03-31", days[30].Date)
	assert.Equal(t, 20, days[4].MinutesWorked, "last duplicate wins")

	total := 0
	for _, d := range days {
		total += d.MinutesWorked
	}
	assert.Equal(t, 20, total)
}

func TestReconcileMonth_InvalidMonth(t *testing.T) {
	assert.Nil(t, ReconcileMonth(nil, Month{2025, 12}))
	assert.Nil(t, ReconcileMonth(nil, Month{0, 1}))
}

func TestReconcileMonth_Idempotent(t *testing.T) {
	input := []DailySummary{
		{Date: "2024-02-29", CheckInTime: "09:00", CheckOutTime: NoTime, MinutesWorked: 30, Status: DayStatusIncomplete},
	}
	a, err := json.Marshal(ReconcileMonth(input, Month{2024, 1}))
	require.NoError(t, err)
	b, err := json.Marshal(ReconcileMonth(input, Month{2024, 1}))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		worked  int
		want    Severity
		deficit int
	}{
		{480, SeverityNone, 0},
		{466, SeverityNone, 14},
		{465, SeverityWarning, 15},
		{421, SeverityWarning, 59},
		{420, SeverityCritical, 60},
		{0, SeverityCritical, 480},
		{500, SeverityNone, -20},
	}
	for _, c := range cases {
		day := DailySummary{Date: "2025-03-04", MinutesWorked: c.worked, MinutesTarget: intPtr(480), Status: DayStatusOK}
		got := Classify(day)
		assert.Equal(t, c.want, got.Severity, "worked=%d", c.worked)
		assert.Equal(t, c.deficit, got.Deficit, "worked=%d", c.worked)
		assert.True(t, got.Applies)
	}
}

func TestClassify_NeverAppliesOutsideWorkdays(t *testing.T) {
	cases := map[string]DailySummary{
		"weekend by date":   {Date: "2025-03-01", MinutesTarget: intPtr(480), Status: DayStatusOK},
		"weekend by status": {Date: "2025-03-04", MinutesTarget: intPtr(480), Status: DayStatusWeekend},
		"leave":             {Date: "2025-03-04", MinutesTarget: intPtr(480), Status: DayStatusLeave},
		"no target":         {Date: "2025-03-04", Status: DayStatusIncomplete},
		"no record":         {Date: "2025-03-04", MinutesTarget: intPtr(480), Status: DayStatusNoRecord},
	}
	for name, day := range cases {
		got := Classify(day)
		assert.False(t, got.Applies, name)
		assert.Equal(t, SeverityNone, got.Severity, name)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "01:30", FormatMinutes(90))
	assert.Equal(t, "23:59", FormatMinutes(1439))
	assert.Equal(t, "160:00", FormatMinutes(9600))
}

func TestWeekStart(t *testing.T) {
	loc := time.FixedZone("BOT", -4*3600)
	assert.Equal(t, "2025-03-03", WeekStart(time.Date(2025, 3, 3, 7, 0, 0, 0, loc)))  // Monday
	assert.Equal(t, "2025-03-03", WeekStart(time.Date(2025, 3, 9, 23, 0, 0, 0, loc))) // Sunday
	assert.Equal(t, "2025-02-24", WeekStart(time.Date(2025, 3, 1, 12, 0, 0, 0, loc))) // crosses month
}

func TestWeeklyHours(t *testing.T) {
	ref := time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC) // Thursday
	days := []DailySummary{
		{Date: "2025-03-02", MinutesWorked: 600}, // previous week
		{Date: "2025-03-03", MinutesWorked: 40},
		{Date: "2025-03-04", MinutesWorked: 50},
		{Date: "2025-03-05", MinutesWorked: 7},
	}
	got := WeeklyHours(days, ref)
	assert.Equal(t, "1.6", got.String())

	assert.True(t, WeeklyHours(nil, ref).IsZero())

	// 3 minutes is exactly 0.05h and rounds away from zero.
	assert.Equal(t, "0.1", WeeklyHours([]DailySummary{{Date: "2025-03-03", MinutesWorked: 3}}, ref).String())
}

func TestMonthHelpers(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, Month{2024, 1}, m)

	from, to := m.Range()
	assert.Equal(t, "2024-02-01", from)
	assert.Equal(t, "2024-02-29", to)

	_, err = ParseMonth("2024-13")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	assert.Equal(t, Month{2025, 11}, MonthOf(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestDayStatus_UnmarshalJSON(t *testing.T) {
	var days []DailySummary
	raw := `[{"fecha":"2025-03-04","horaEntrada":"08:00","horaSalida":"00:00","minutosTrabajados":0,"estado":"INCOMPLETO"},
		{"fecha":"2025-03-05","horaEntrada":"00:00","horaSalida":"00:00","minutosTrabajados":0,"estado":"???"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &days))
	assert.Equal(t, DayStatusIncomplete, days[0].Status)
	assert.Nil(t, days[0].MinutesTarget)
	assert.Equal(t, DayStatusNoRecord, days[1].Status)
}
