package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/auth"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrMissingEmployee):
		Forbidden(w, "Only employees can perform this action")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrConfigurationMissing):
		NotFound(w, "Employee or office config not found")
	case errors.Is(err, attendance.ErrWrongNetwork):
		Forbidden(w, "Please connect to the office WiFi to check in")
	case errors.Is(err, attendance.ErrUnregisteredDevice):
		Forbidden(w, "This device is not registered to your account")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		StateConflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		StateConflict(w, "Please check in first")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		StateConflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Summary domain errors
	case errors.Is(err, summary.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employeeId", nil)
	case errors.Is(err, summary.ErrInvalidPeriod):
		BadRequest(w, "Invalid year or month", nil)
	case errors.Is(err, summary.ErrDuplicateSummary):
		StateConflict(w, "Monthly summary already exists")
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")
	case errors.Is(err, summary.ErrForbidden):
		Forbidden(w, "You can only view your own summary")

	// Office domain errors
	case errors.Is(err, office.ErrOfficeConfigNotFound):
		NotFound(w, "Office MAC address is not configured")
	case errors.Is(err, office.ErrOfficeConfigExists):
		StateConflict(w, "Office MAC address already configured, use update instead")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyDeleted):
		StateConflict(w, "Employee is already deleted")
	case errors.Is(err, employee.ErrEmployeeNotDeleted):
		StateConflict(w, "Employee is not deleted")
	case errors.Is(err, employee.ErrUsernameExists), errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, employee.ErrDeviceAlreadyRegistered):
		Conflict(w, "Device MAC address is registered to another employee")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserAlreadyDeleted):
		StateConflict(w, "User is already deleted")
	case errors.Is(err, user.ErrUserNotDeleted):
		StateConflict(w, "User is not deleted")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		StateConflict(w, "Cannot delete your own account")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		StateConflict(w, "Request already processed")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
