package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/auth"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantKind string
	}{
		{validator.ValidationErrors{{Field: "wifi_mac", Message: "wifi_mac is required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{attendance.ErrWrongNetwork, http.StatusForbidden, "FORBIDDEN"},
		{attendance.ErrUnregisteredDevice, http.StatusForbidden, "FORBIDDEN"},
		{attendance.ErrConfigurationMissing, http.StatusNotFound, "NOT_FOUND"},
		{attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, "STATE_CONFLICT"},
		{attendance.ErrNotCheckedIn, http.StatusBadRequest, "STATE_CONFLICT"},
		{attendance.ErrAlreadyCheckedOut, http.StatusBadRequest, "STATE_CONFLICT"},
		{summary.ErrDuplicateSummary, http.StatusBadRequest, "STATE_CONFLICT"},
		{summary.ErrInvalidEmployeeID, http.StatusBadRequest, "BAD_REQUEST"},
		{summary.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{office.ErrOfficeConfigNotFound, http.StatusNotFound, "NOT_FOUND"},
		{employee.ErrUsernameExists, http.StatusConflict, "CONFLICT"},
		{leave.ErrRequestAlreadyProcessed, http.StatusBadRequest, "STATE_CONFLICT"},
		{user.ErrCannotDeleteSelf, http.StatusBadRequest, "STATE_CONFLICT"},
		{user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("failed to get employee: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND"},
		{errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantKind, body.Error.Code)
		})
	}
}

func TestHandleError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: relation attendances does not exist"))

	assert.NotContains(t, rec.Body.String(), "relation")
}
