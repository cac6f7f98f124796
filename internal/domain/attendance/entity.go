package attendance

import (
	"encoding/json"
	"strings"
	"time"
)

// NoTime is the backend sentinel for a missing check-in or check-out.
const NoTime = "00:00"

// DayStatus is the backend classification of a calendar day.
// Values are the backend wire vocabulary.
type DayStatus string

const (
	DayStatusOK         DayStatus = "OK"
	DayStatusIncomplete DayStatus = "INCOMPLETO"
	DayStatusNoRecord   DayStatus = "SIN_REGISTRO"
	DayStatusLeave      DayStatus = "PERMISO"
	DayStatusWeekend    DayStatus = "FDS"
)

var dayStatusAliases = map[string]DayStatus{
	"OK":           DayStatusOK,
	"INCOMPLETO":   DayStatusIncomplete,
	"INCOMPLETE":   DayStatusIncomplete,
	"SIN_REGISTRO": DayStatusNoRecord,
	"NO_RECORD":    DayStatusNoRecord,
	"PERMISO":      DayStatusLeave,
	"LEAVE":        DayStatusLeave,
	"FDS":          DayStatusWeekend,
	"WEEKEND":      DayStatusWeekend,
}

// ParseDayStatus maps a wire or canonical name onto the closed set.
func ParseDayStatus(s string) (DayStatus, bool) {
	st, ok := dayStatusAliases[strings.ToUpper(strings.TrimSpace(s))]
	return st, ok
}

// HasRecord reports whether the day carries any check-in/out data.
func (s DayStatus) HasRecord() bool {
	switch s {
	case DayStatusOK, DayStatusIncomplete:
		return true
	case DayStatusNoRecord, DayStatusLeave, DayStatusWeekend:
		return false
	}
	return false
}

// Label is the human readable status used in reports.
func (s DayStatus) Label() string {
	switch s {
	case DayStatusOK:
		return "OK"
	case DayStatusIncomplete:
		return "INCOMPLETO"
	case DayStatusNoRecord:
		return "SIN REGISTRO"
	case DayStatusLeave:
		return "PERMISO"
	case DayStatusWeekend:
		return "FDS"
	}
	return string(s)
}

// UnmarshalJSON decodes unknown statuses as DayStatusNoRecord so a single odd
// row never discards the whole month.
func (s *DayStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	st, ok := ParseDayStatus(raw)
	if !ok {
		st = DayStatusNoRecord
	}
	*s = st
	return nil
}

// DailySummary is the backend aggregate of one calendar day of attendance.
type DailySummary struct {
	Date          string    `json:"fecha"`
	CheckInTime   string    `json:"horaEntrada"`
	CheckOutTime  string    `json:"horaSalida"`
	MinutesWorked int       `json:"minutosTrabajados"`
	MinutesTarget *int      `json:"minutosObjetivo,omitempty"`
	Status        DayStatus `json:"estado"`
}

// EventKind is the direction of a clock event.
type EventKind string

const (
	EventKindCheckIn  EventKind = "ENTRADA"
	EventKindCheckOut EventKind = "SALIDA"
)

func (k EventKind) Valid() bool {
	return k == EventKindCheckIn || k == EventKindCheckOut
}

// EventState is the validity of a clock event. VALID -> VOIDED is the only transition.
type EventState string

const (
	EventStateValid  EventState = "VALIDA"
	EventStateVoided EventState = "ANULADA"
)

// UnmarshalJSON treats anything other than a voided marker as valid.
func (s *EventState) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(EventStateVoided), "VOIDED":
		*s = EventStateVoided
	default:
		*s = EventStateValid
	}
	return nil
}

const (
	OriginWeb    = "web"
	OriginManual = "manual"
)

// Event is a single check-in or check-out.
type Event struct {
	ID        string     `json:"id_asistencia"`
	Kind      EventKind  `json:"tipo"`
	Timestamp time.Time  `json:"fecha_hora"`
	State     EventState `json:"estado"`
	Origin    string     `json:"origen"`
	Note      *string    `json:"observacion,omitempty"`
	UserID    string     `json:"id_usuario,omitempty"`
}

func (e Event) IsVoided() bool {
	return e.State == EventStateVoided
}
