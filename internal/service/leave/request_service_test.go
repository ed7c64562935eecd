package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/repository/memory"
)

const (
	employeeID = "0191a8f0-0000-7000-8000-000000000001"
	reviewerID = "0191a8f0-0000-7000-8000-0000000000aa"
)

func newService(t *testing.T, kind leave.Kind) leave.RequestService {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	_, err := employees.Create(context.Background(), employee.Employee{ID: employeeID, FullName: "Ravi Kumar"})
	require.NoError(t, err)

	now := time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)
	return NewRequestService(memory.NewRequestRepository(kind), employees, func() time.Time { return now })
}

func TestRequestService_Workflow(t *testing.T) {
	for _, kind := range []leave.Kind{leave.KindLeave, leave.KindPermission} {
		t.Run(string(kind), func(t *testing.T) {
			svc := newService(t, kind)
			ctx := context.Background()
			assert.Equal(t, kind, svc.Kind())

			first, err := svc.Create(ctx, employeeID, leave.CreateRequest{Reason: "  family function "})
			require.NoError(t, err)
			assert.Equal(t, leave.StatusPending, first.Status)
			assert.Equal(t, "family function", first.Reason)
			assert.Equal(t, kind, first.Kind)
			assert.Equal(t, "Ravi Kumar", first.EmployeeName)

			second, err := svc.Create(ctx, employeeID, leave.CreateRequest{Reason: "doctor"})
			require.NoError(t, err)
			third, err := svc.Create(ctx, employeeID, leave.CreateRequest{Reason: "travel"})
			require.NoError(t, err)

			require.NoError(t, svc.Approve(ctx, first.ID, reviewerID))
			reason := "short staffed"
			require.NoError(t, svc.Reject(ctx, second.ID, reviewerID, leave.RejectRequest{Reason: &reason}))

			assert.ErrorIs(t, svc.Approve(ctx, first.ID, reviewerID), leave.ErrRequestAlreadyProcessed)
			assert.ErrorIs(t, svc.Reject(ctx, second.ID, reviewerID, leave.RejectRequest{}), leave.ErrRequestAlreadyProcessed)

			counts, err := svc.StatusCounts(ctx, employeeID)
			require.NoError(t, err)
			assert.Equal(t, leave.StatusCounts{Pending: 1, Approved: 1, Rejected: 1}, counts)

			pending := string(leave.StatusPending)
			list, err := svc.List(ctx, leave.RequestFilter{Status: &pending})
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, third.ID, list[0].ID)

			mine, err := svc.ListMine(ctx, employeeID)
			require.NoError(t, err)
			assert.Len(t, mine, 3)
		})
	}
}

func TestRequestService_Errors(t *testing.T) {
	svc := newService(t, leave.KindLeave)
	ctx := context.Background()

	_, err := svc.Create(ctx, employeeID, leave.CreateRequest{})
	assert.ErrorContains(t, err, "reason is required")

	_, err = svc.Create(ctx, "0191a8f0-0000-7000-8000-0000000000ff", leave.CreateRequest{Reason: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, svc.Approve(ctx, "0191a8f0-0000-7000-8000-0000000000ee", reviewerID), leave.ErrRequestNotFound)
	assert.Error(t, svc.Approve(ctx, "bad-id", reviewerID))

	bogus := "Maybe"
	_, err = svc.List(ctx, leave.RequestFilter{Status: &bogus})
	assert.ErrorContains(t, err, "status")
}
