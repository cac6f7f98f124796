package dashboard

import (
	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
)

// Fallback messages when a failed source carries no message of its own.
const (
	MessageDashboardError  = "Error cargando dashboard."
	MessageUserDetailError = "Error al cargar detalle del usuario"
)

// ========== DASHBOARD ==========

// DashboardResponse is the landing page of any signed-in user. Error carries
// the first failed source; the other sections are still filled.
type DashboardResponse struct {
	Today        string                   `json:"today"`
	DisplayName  string                   `json:"display_name"`
	Role         user.Role                `json:"role"`
	IsManager    bool                     `json:"is_manager"`
	QuickAction  attendance.Action        `json:"quick_action"`
	TodaySummary *attendance.DailySummary `json:"today_summary,omitempty"`
	WeeklyHours  float64                  `json:"weekly_hours"`
	Month        attendance.MonthView     `json:"month"`
	Leave        leave.MyLeaveView        `json:"leave"`
	Manager      *ManagerPanel            `json:"manager,omitempty"`
	Error        string                   `json:"error,omitempty"`
}

// ManagerPanel is only present for ADMIN and RRHH.
type ManagerPanel struct {
	Overview     user.Overview        `json:"overview"`
	PendingLeave []leave.LeaveRequest `json:"pending_leave"`
}

// ========== USER DETAIL ==========

// UserDetailResponse is everything a manager sees about one user.
type UserDetailResponse struct {
	User         user.User                 `json:"user"`
	Schedule     schedule.WeeklySchedule   `json:"schedule"`
	Events       attendance.UserEventsView `json:"events"`
	Month        attendance.MonthView      `json:"month"`
	PendingLeave []leave.LeaveRequest      `json:"pending_leave"`
	Error        string                    `json:"error,omitempty"`
}
