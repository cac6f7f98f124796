package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkRequest is the self-service clock payload sent to the backend.
type MarkRequest struct {
	Kind      string `json:"tipo"`
	Origin    string `json:"origen"`
	IPAddress string `json:"ip_registro,omitempty"`
}

// ManualEventRequest is a manager-entered clock event for another user.
type ManualEventRequest struct {
	UserID    string    `json:"id_usuario" validate:"required"`
	Kind      EventKind `json:"tipo" validate:"required,oneof=ENTRADA SALIDA"`
	Timestamp string    `json:"fecha_hora" validate:"required"`
	Note      *string   `json:"observacion,omitempty"`
	Origin    string    `json:"origen"`
}

func (r *ManualEventRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = append(errs, validator.Merge(validator.Struct(r))...)

	if !validator.IsEmpty(r.Timestamp) {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_hora",
				Message: "fecha_hora must be an ISO-8601 timestamp",
			})
		}
	}

	if r.Note != nil {
		trimmed := strings.TrimSpace(*r.Note)
		if trimmed == "" {
			r.Note = nil
		} else {
			r.Note = &trimmed
		}
	}
	r.Origin = OriginManual

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VoidEventRequest carries the optional reason for voiding an event.
type VoidEventRequest struct {
	Note *string `json:"observacion,omitempty"`
}

func (r *VoidEventRequest) Normalize() {
	if r.Note == nil {
		return
	}
	trimmed := strings.TrimSpace(*r.Note)
	if trimmed == "" {
		r.Note = nil
		return
	}
	r.Note = &trimmed
}

// MonthView is a reconciled month ready for rendering.
type MonthView struct {
	Month       string         `json:"month"`
	From        string         `json:"from"`
	To          string         `json:"to"`
	Rows        []MonthRow     `json:"rows"`
	Totals      MonthTotals    `json:"totals"`
	WeeklyHours float64        `json:"weekly_hours"`
	Days        []DailySummary `json:"-"`
	Error       string         `json:"error,omitempty"`
}

// NewMonthView reconciles summaries for m and decorates them. ref anchors the
// weekly total.
func NewMonthView(summaries []DailySummary, m Month, ref time.Time) MonthView {
	days := ReconcileMonth(summaries, m)
	from, to := m.Range()
	return MonthView{
		Month:       m.String(),
		From:        from,
		To:          to,
		Rows:        BuildMonthRows(days),
		Totals:      Totals(days),
		WeeklyHours: WeeklyHours(days, ref).InexactFloat64(),
		Days:        days,
	}
}

// UserEventsView lists a user's clock events with the ones that can be voided.
type UserEventsView struct {
	Events   []Event `json:"events"`
	Voidable []Event `json:"voidable"`
}
