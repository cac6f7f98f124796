package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthRows(t *testing.T) {
	days := ReconcileMonth([]DailySummary{
		{Date: "2025-03-03", CheckInTime: "08:30", CheckOutTime: "15:30", MinutesWorked: 420, MinutesTarget: intPtr(480), Status: DayStatusOK},
		{Date: "2025-03-04", CheckInTime: "08:30", CheckOutTime: "16:15", MinutesWorked: 465, MinutesTarget: intPtr(480), Status: DayStatusOK},
		{Date: "2025-03-05", CheckInTime: "08:30", CheckOutTime: NoTime, MinutesWorked: 0, MinutesTarget: intPtr(480), Status: DayStatusIncomplete},
		{Date: "2025-03-06", CheckInTime: NoTime, CheckOutTime: NoTime, MinutesTarget: intPtr(480), Status: DayStatusLeave},
		{Date: "2025-03-07", CheckInTime: "08:00", CheckOutTime: "17:00", MinutesWorked: 540, MinutesTarget: intPtr(480), Status: DayStatusOK},
	}, Month{2025, 2})
	rows := BuildMonthRows(days)
	require.Len(t, rows, 31)

	assert.Equal(t, BadgeWeekend, rows[0].Badge)
	assert.Equal(t, SeverityNone, rows[0].Severity)

	assert.Equal(t, BadgeRecorded, rows[2].Badge)
	assert.Equal(t, SeverityCritical, rows[2].Severity)
	assert.Equal(t, 60, rows[2].ShortfallMinutes)
	assert.Equal(t, "07:00", rows[2].Total)

	assert.Equal(t, SeverityWarning, rows[3].Severity)
	assert.Equal(t, 15, rows[3].ShortfallMinutes)

	assert.Equal(t, BadgeIncomplete, rows[4].Badge)
	assert.Equal(t, SeverityCritical, rows[4].Severity)

	assert.Equal(t, BadgeLeave, rows[5].Badge)
	assert.Zero(t, rows[5].ShortfallMinutes)

	assert.Equal(t, BadgeRecorded, rows[6].Badge)
	assert.Equal(t, SeverityNone, rows[6].Severity)
	assert.Zero(t, rows[6].ShortfallMinutes, "over target shows no shortfall")

	assert.Equal(t, BadgeNoRecord, rows[9].Badge) // Monday 10th, placeholder
}

func TestTotals(t *testing.T) {
	days := ReconcileMonth([]DailySummary{
		{Date: "2024-02-01", MinutesWorked: 480, MinutesTarget: intPtr(480), Status: DayStatusOK},
		{Date: "2024-02-02", MinutesWorked: 90, MinutesTarget: intPtr(480), Status: DayStatusIncomplete},
		{Date: "2024-02-05", MinutesTarget: intPtr(480), Status: DayStatusLeave},
	}, Month{2024, 1})

	got := Totals(days)
	assert.Equal(t, 570, got.WorkedMinutes)
	assert.Equal(t, "09:30", got.Worked)
	assert.Equal(t, 1440, got.TargetMinutes)
	assert.Equal(t, 2, got.DaysRecorded)
	assert.Equal(t, 1, got.DaysOnLeave)
	assert.Equal(t, 8, got.DaysWeekend) // Feb 2024: 3,4,10,11,17,18,24,25
	assert.Equal(t, 29-2-1-8, got.DaysNoRecord)
}

func TestQuickAction(t *testing.T) {
	assert.Equal(t, ActionCheckIn, QuickAction(nil))
	assert.Equal(t, ActionCheckIn, QuickAction(&DailySummary{CheckInTime: NoTime, CheckOutTime: NoTime, Status: DayStatusNoRecord}))
	assert.Equal(t, ActionCheckOut, QuickAction(&DailySummary{CheckInTime: "08:00", CheckOutTime: NoTime, Status: DayStatusIncomplete}))
	assert.Equal(t, ActionNone, QuickAction(&DailySummary{CheckInTime: "08:00", CheckOutTime: "16:00", Status: DayStatusOK}))
	assert.Equal(t, ActionNone, QuickAction(&DailySummary{CheckInTime: NoTime, CheckOutTime: NoTime, Status: DayStatusLeave}))
	assert.Equal(t, ActionNone, QuickAction(&DailySummary{CheckInTime: NoTime, CheckOutTime: NoTime, Status: DayStatusWeekend}))
	assert.Equal(t, ActionNone, QuickAction(&DailySummary{CheckInTime: "08:00", CheckOutTime: "12:00", Status: DayStatusIncomplete}))
}

func TestVoidable(t *testing.T) {
	base := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: "a", Timestamp: base, State: EventStateValid},
		{ID: "b", Timestamp: base.Add(2 * time.Hour), State: EventStateVoided},
		{ID: "c", Timestamp: base.Add(4 * time.Hour), State: EventStateValid},
		{ID: "d", Timestamp: base.Add(-time.Hour), State: EventStateValid},
	}
	got := Voidable(events)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "d", got[2].ID)
}
