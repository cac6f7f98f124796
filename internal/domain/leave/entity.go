package leave

// Status of a leave request. PENDING is the only state that can change.
type Status string

const (
	StatusPending  Status = "PENDIENTE"
	StatusApproved Status = "APROBADO"
	StatusRejected Status = "RECHAZADO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Leave types offered by the request form.
const (
	TypeVacation = "VACACION"
	TypeHealth   = "ENFERMEDAD"
	TypePersonal = "ONOMASTICO"
	TypeDuty     = "COMISION"
	TypePaid     = "GOCE"
	TypeUnpaid   = "SIN_GOCE"
)

var TypeValues = []string{TypeVacation, TypeHealth, TypePersonal, TypeDuty, TypePaid, TypeUnpaid}

// LeaveRequest is a request for absence over an inclusive date range.
type LeaveRequest struct {
	ID          string  `json:"id_permiso"`
	Type        string  `json:"tipo"`
	Reason      string  `json:"motivo"`
	StartDate   string  `json:"fecha_inicio"`
	EndDate     string  `json:"fecha_fin"`
	Status      Status  `json:"estado"`
	Paid        *bool   `json:"con_goce,omitempty"`
	RequesterID string  `json:"id_solicitante,omitempty"`
	ResolverID  *string `json:"id_resolvedor,omitempty"`
}

func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// Pending keeps the pending requests.
func Pending(list []LeaveRequest) []LeaveRequest {
	return filter(list, func(l LeaveRequest) bool { return l.Status == StatusPending })
}

// Approved keeps the approved requests.
func Approved(list []LeaveRequest) []LeaveRequest {
	return filter(list, func(l LeaveRequest) bool { return l.Status == StatusApproved })
}

// PendingByRequester keeps the pending requests filed by userID.
func PendingByRequester(list []LeaveRequest, userID string) []LeaveRequest {
	return filter(list, func(l LeaveRequest) bool {
		return l.Status == StatusPending && l.RequesterID == userID
	})
}

// RequestersWithPending returns the set of users with at least one pending request.
func RequestersWithPending(list []LeaveRequest) map[string]bool {
	out := make(map[string]bool)
	for _, l := range list {
		if l.Status == StatusPending && l.RequesterID != "" {
			out[l.RequesterID] = true
		}
	}
	return out
}

func filter(list []LeaveRequest, keep func(LeaveRequest) bool) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(list))
	for _, l := range list {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
