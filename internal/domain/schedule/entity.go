package schedule

import "sort"

const (
	DefaultStartTime     = "08:30:00"
	DefaultEndTime       = "16:30:00"
	DefaultTargetMinutes = 480

	MaxTargetMinutes    = 1440
	MaxToleranceMinutes = 240
)

// DaySchedule is the expected working window of one weekday.
type DaySchedule struct {
	Weekday          int    `json:"dia_semana"` // 1=Monday, ..., 7=Sunday
	StartTime        string `json:"hora_inicio"`
	EndTime          string `json:"hora_fin"`
	TargetMinutes    int    `json:"minutos_objetivo"`
	Active           *bool  `json:"activo,omitempty"`
	ToleranceMinutes *int   `json:"tolerancia_minutos,omitempty"`
}

// IsActive reports the active flag, defaulting to Monday..Friday.
func (d DaySchedule) IsActive() bool {
	if d.Active != nil {
		return *d.Active
	}
	return d.Weekday <= 5
}

// WeeklySchedule ("jornada") is one DaySchedule per weekday.
type WeeklySchedule struct {
	Days []DaySchedule `json:"dias"`
}

// DefaultDay is the schedule used for a weekday nobody configured.
func DefaultDay(weekday int) DaySchedule {
	active := weekday <= 5
	tolerance := 0
	return DaySchedule{
		Weekday:          weekday,
		StartTime:        DefaultStartTime,
		EndTime:          DefaultEndTime,
		TargetMinutes:    DefaultTargetMinutes,
		Active:           &active,
		ToleranceMinutes: &tolerance,
	}
}

// Normalize returns a schedule with exactly weekdays 1..7 in order. Missing
// days get defaults, out of range weekdays are dropped, the last entry wins
// for duplicates and HH:MM times are widened to HH:MM:SS.
func Normalize(s WeeklySchedule) WeeklySchedule {
	byDay := make(map[int]DaySchedule, 7)
	for _, d := range s.Days {
		if d.Weekday < 1 || d.Weekday > 7 {
			continue
		}
		byDay[d.Weekday] = d
	}

	days := make([]DaySchedule, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		def := DefaultDay(wd)
		d, ok := byDay[wd]
		if !ok {
			days = append(days, def)
			continue
		}
		if d.StartTime == "" {
			d.StartTime = def.StartTime
		}
		if d.EndTime == "" {
			d.EndTime = def.EndTime
		}
		d.StartTime = withSeconds(d.StartTime)
		d.EndTime = withSeconds(d.EndTime)
		if d.Active == nil {
			d.Active = def.Active
		}
		if d.ToleranceMinutes == nil {
			d.ToleranceMinutes = def.ToleranceMinutes
		}
		days = append(days, d)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })
	return WeeklySchedule{Days: days}
}

func withSeconds(clock string) string {
	if len(clock) == 5 {
		return clock + ":00"
	}
	return clock
}

// DayLabel is the display name of a weekday.
func DayLabel(weekday int) string {
	labels := []string{"", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}
	if weekday < 1 || weekday > 7 {
		return ""
	}
	return labels[weekday]
}
