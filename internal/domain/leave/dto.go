package leave

import (
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

type SubmitRequest struct {
	Type      string `json:"tipo"`
	Reason    string `json:"motivo"`
	StartDate string `json:"fecha_inicio"`
	EndDate   string `json:"fecha_fin"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Reason = strings.TrimSpace(r.Reason)

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo must be one of: " + strings.Join(TypeValues, ", "),
		})
	}

	if r.Reason == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio must have format YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must have format YYYY-MM-DD",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_fin",
			Message: "fecha_fin must not be before fecha_inicio",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveRequest struct {
	Status Status  `json:"estado" validate:"required,oneof=APROBADO RECHAZADO"`
	Paid   *bool   `json:"con_goce,omitempty"`
	Note   *string `json:"observacion,omitempty"`
}

func (r *ResolveRequest) Validate() error {
	if r.Note != nil {
		trimmed := strings.TrimSpace(*r.Note)
		if trimmed == "" {
			r.Note = nil
		} else {
			r.Note = &trimmed
		}
	}
	return validator.Struct(r)
}

// MyLeaveView is the caller's own leave history split by state.
type MyLeaveView struct {
	All      []LeaveRequest `json:"all"`
	Pending  []LeaveRequest `json:"pending"`
	Approved []LeaveRequest `json:"approved"`
}

func NewMyLeaveView(list []LeaveRequest) MyLeaveView {
	if list == nil {
		list = []LeaveRequest{}
	}
	return MyLeaveView{
		All:      list,
		Pending:  Pending(list),
		Approved: Approved(list),
	}
}

// SubmittedEvent is published to managers when a request enters the queue.
type SubmittedEvent struct {
	LeaveID     string `json:"id_permiso"`
	RequesterID string `json:"id_solicitante,omitempty"`
	Type        string `json:"tipo"`
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
}

// ResolvedEvent is published to the requester once a manager decides.
type ResolvedEvent struct {
	LeaveID string `json:"id_permiso"`
	Status  Status `json:"estado"`
	Paid    *bool  `json:"con_goce,omitempty"`
}
