package attendance

import "sort"

// Badge is the single tag shown next to a day in month tables.
type Badge string

const (
	BadgeWeekend    Badge = "WEEKEND"
	BadgeLeave      Badge = "LEAVE"
	BadgeIncomplete Badge = "INCOMPLETE"
	BadgeNoRecord   Badge = "NO_RECORD"
	BadgeRecorded   Badge = "RECORDED"
)

func badgeFor(day DailySummary) Badge {
	if day.Status == DayStatusWeekend || IsWeekend(day.Date) {
		return BadgeWeekend
	}
	switch day.Status {
	case DayStatusLeave:
		return BadgeLeave
	case DayStatusIncomplete:
		return BadgeIncomplete
	case DayStatusNoRecord:
		return BadgeNoRecord
	case DayStatusOK:
		return BadgeRecorded
	}
	return BadgeNoRecord
}

// MonthRow is one rendered day of a month table.
type MonthRow struct {
	Date             string    `json:"date"`
	Status           DayStatus `json:"status"`
	Badge            Badge     `json:"badge"`
	Severity         Severity  `json:"severity"`
	ShortfallMinutes int       `json:"shortfall_minutes,omitempty"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Total            string    `json:"total"`
	MinutesWorked    int       `json:"minutes_worked"`
	MinutesTarget    *int      `json:"minutes_target,omitempty"`
}

// BuildMonthRows decorates reconciled days for presentation.
func BuildMonthRows(days []DailySummary) []MonthRow {
	rows := make([]MonthRow, 0, len(days))
	for _, d := range days {
		c := Classify(d)
		row := MonthRow{
			Date:          d.Date,
			Status:        d.Status,
			Badge:         badgeFor(d),
			Severity:      c.Severity,
			CheckIn:       d.CheckInTime,
			CheckOut:      d.CheckOutTime,
			Total:         FormatMinutes(d.MinutesWorked),
			MinutesWorked: d.MinutesWorked,
			MinutesTarget: d.MinutesTarget,
		}
		if c.Applies && c.Deficit > 0 {
			row.ShortfallMinutes = c.Deficit
		}
		rows = append(rows, row)
	}
	return rows
}

// MonthTotals aggregates a reconciled month.
type MonthTotals struct {
	WorkedMinutes int    `json:"worked_minutes"`
	TargetMinutes int    `json:"target_minutes"`
	Worked        string `json:"worked"`
	Target        string `json:"target"`
	DaysRecorded  int    `json:"days_recorded"`
	DaysNoRecord  int    `json:"days_no_record"`
	DaysOnLeave   int    `json:"days_on_leave"`
	DaysWeekend   int    `json:"days_weekend"`
}

func Totals(days []DailySummary) MonthTotals {
	var t MonthTotals
	for _, d := range days {
		t.WorkedMinutes += d.MinutesWorked
		if d.MinutesTarget != nil {
			t.TargetMinutes += *d.MinutesTarget
		}
		switch d.Status {
		case DayStatusOK, DayStatusIncomplete:
			t.DaysRecorded++
		case DayStatusNoRecord:
			t.DaysNoRecord++
		case DayStatusLeave:
			t.DaysOnLeave++
		}
		if d.Status == DayStatusWeekend || IsWeekend(d.Date) {
			t.DaysWeekend++
		}
	}
	t.Worked = FormatMinutes(t.WorkedMinutes)
	t.Target = FormatMinutes(t.TargetMinutes)
	return t
}

// Action is the clock button offered for today.
type Action string

const (
	ActionCheckIn  Action = "CHECK_IN"
	ActionCheckOut Action = "CHECK_OUT"
	ActionNone     Action = "NONE"
)

// QuickAction decides which clock action today's summary allows.
func QuickAction(today *DailySummary) Action {
	if today == nil {
		return ActionCheckIn
	}
	switch today.Status {
	case DayStatusLeave, DayStatusWeekend, DayStatusOK:
		return ActionNone
	}
	if today.CheckInTime != NoTime && today.CheckOutTime == NoTime {
		return ActionCheckOut
	}
	if today.CheckInTime == NoTime {
		return ActionCheckIn
	}
	return ActionNone
}

// Voidable returns the valid events, newest first.
func Voidable(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !e.IsVoided() {
			out = append(out, e)
		}
	}
	return NewestFirst(out)
}

// NewestFirst sorts events by timestamp, latest first, in place.
func NewestFirst(events []Event) []Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}
