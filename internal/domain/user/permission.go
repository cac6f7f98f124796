package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionLeaveViewOwn      Permission = "leave.view_own"
	PermissionLeaveCreate       Permission = "leave.create"
	PermissionReportsViewOwn    Permission = "reports.view_own"

	// Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManual  Permission = "attendance.manual"
	PermissionAttendanceVoid    Permission = "attendance.void"
	PermissionLeaveViewAll      Permission = "leave.view_all"
	PermissionLeaveApprove      Permission = "leave.approve"
	PermissionScheduleManage    Permission = "schedule.manage"
	PermissionReportsViewAll    Permission = "reports.view_all"
	PermissionUserManage        Permission = "user.manage"
)

var selfService = []Permission{
	PermissionViewOwnProfile,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionReportsViewOwn,
}

var management = []Permission{
	PermissionAttendanceViewAll,
	PermissionAttendanceManual,
	PermissionAttendanceVoid,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionScheduleManage,
	PermissionReportsViewAll,
	PermissionUserManage,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin:    append(append([]Permission{}, selfService...), management...),
	RoleHR:       append(append([]Permission{}, selfService...), management...),
	RoleEmployee: selfService,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
