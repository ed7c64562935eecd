package user

type Permission string

const (
	// Office network
	PermissionOfficeView   Permission = "office.view"
	PermissionOfficeManage Permission = "office.manage"

	// Account management
	PermissionAdminManage Permission = "admin.manage"
	PermissionUserManage  Permission = "user.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// Employee Management
	PermissionEmployeeManage Permission = "employee.manage"

	// Attendance
	PermissionAttendanceCheckIn Permission = "attendance.checkin"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Monthly summaries
	PermissionSummaryViewOwn Permission = "summary.view_own"
	PermissionSummaryViewAll Permission = "summary.view_all"
	PermissionSummarySave    Permission = "summary.save"
	PermissionSummaryExport  Permission = "summary.export"

	// Leave & permission requests
	PermissionLeaveRequest      Permission = "leave.request"
	PermissionLeaveApprove      Permission = "leave.approve"
	PermissionPermissionRequest Permission = "permission.request"
	PermissionPermissionApprove Permission = "permission.approve"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionOfficeView,
		PermissionOfficeManage,
		PermissionAdminManage,
		PermissionUserManage,
		PermissionDashboardView,
	},
	RoleAdmin: {
		PermissionDashboardView,
		PermissionEmployeeManage,
		PermissionAttendanceViewAll,
		PermissionSummaryViewOwn,
		PermissionSummaryViewAll,
		PermissionSummarySave,
		PermissionSummaryExport,
		PermissionLeaveApprove,
		PermissionPermissionApprove,
	},
	RoleEmployee: {
		PermissionOfficeView,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
		PermissionSummaryViewOwn,
		PermissionSummarySave,
		PermissionLeaveRequest,
		PermissionPermissionRequest,
	},
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

// HasAnyPermission checks if a role holds at least one of the given permissions
func HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}
