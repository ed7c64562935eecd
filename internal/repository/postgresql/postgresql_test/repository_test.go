package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/dashboard"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
	"github.com/wifiattend/attendance-server/internal/repository/postgresql"
)

func createEmployee(t *testing.T, db *database.DB, username, mobile, laptop string) employee.Employee {
	t.Helper()
	ctx := context.Background()

	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		Username:     username,
		PasswordHash: "hash",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	e, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		UserID:           u.ID,
		FullName:         "Employee " + username,
		MobileMacAddress: mobile,
		LaptopMacAddress: laptop,
	})
	require.NoError(t, err)
	return e
}

func TestUserRepository(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, user.User{Username: "hr.admin", PasswordHash: "hash", Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, user.User{Username: "hr.admin", PasswordHash: "hash", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	got, err := repo.GetByUsername(ctx, "hr.admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Nil(t, got.EmployeeID)

	require.NoError(t, repo.SoftDelete(ctx, created.ID))
	assert.ErrorIs(t, repo.SoftDelete(ctx, created.ID), user.ErrUserNotFound)

	deleted, err := repo.ListByRole(ctx, user.RoleAdmin, true)
	require.NoError(t, err)
	assert.Len(t, deleted, 1)

	all, err := repo.List(ctx, user.UserFilter{Deleted: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Restore(ctx, created.ID))

	_, err = repo.Create(ctx, user.User{Username: "asha", PasswordHash: "hash", Role: user.RoleEmployee})
	require.NoError(t, err)
	all, err = repo.List(ctx, user.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "asha", all[0].Username)
	admins, err := repo.List(ctx, user.UserFilter{Role: user.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, created.ID, admins[0].ID)

	_, err = repo.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestEmployeeRepository(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	first := createEmployee(t, db, "asha", "aa:bb:cc:dd:ee:01", "aa:bb:cc:dd:ee:02")

	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{Username: "vikram", PasswordHash: "hash", Role: user.RoleEmployee})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{
		UserID:           u.ID,
		FullName:         "Vikram",
		MobileMacAddress: "aa:bb:cc:dd:ee:01",
		LaptopMacAddress: "aa:bb:cc:dd:ee:09",
	})
	assert.ErrorIs(t, err, employee.ErrDeviceAlreadyRegistered)

	got, err := repo.GetByUserID(ctx, first.UserID)
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)

	list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: "ash", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	require.NoError(t, repo.SoftDelete(ctx, first.ID))
	ids, err := repo.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAttendanceRepository(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	emp := createEmployee(t, db, "asha", "aa:bb:cc:dd:ee:01", "aa:bb:cc:dd:ee:02")
	day := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.November, 3, 4, 35, 0, 0, time.UTC)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        day,
		CheckInTime: checkIn,
		Status:      attendance.StatusPending,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        day,
		CheckInTime: checkIn.Add(time.Minute),
		Status:      attendance.StatusPending,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	hours := decimal.RequireFromString("6.08")
	require.NoError(t, repo.CheckOut(ctx, created.ID, checkIn.Add(6*time.Hour+5*time.Minute), attendance.StatusPresent, hours))
	assert.ErrorIs(t, repo.CheckOut(ctx, created.ID, checkIn.Add(7*time.Hour), attendance.StatusPresent, hours), attendance.ErrAlreadyCheckedOut)

	got, err := repo.GetByEmployeeAndDate(ctx, emp.ID, day)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, got.Status)
	require.NotNil(t, got.WorkHours)
	assert.True(t, hours.Equal(*got.WorkHours))
	assert.Equal(t, "2025-11-03", attendance.DateKey(got.Date))

	inRange, err := repo.ListInRange(ctx, emp.ID, day.AddDate(0, 0, -2), day)
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        day.AddDate(0, 0, 1),
		CheckInTime: checkIn.AddDate(0, 0, 1),
		Status:      attendance.StatusAbsent,
	})
	require.NoError(t, err)
	counts, err := repo.CountByStatusInRange(ctx, emp.ID, day.AddDate(0, 0, -2), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, attendance.Counts{Present: 1, Absent: 1}, counts)

	status := string(attendance.StatusPresent)
	filter := attendance.AttendanceFilter{Status: &status}
	require.NoError(t, filter.Validate())
	list, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, emp.FullName, list[0].EmployeeName)
}

func TestRequestRepository(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	emp := createEmployee(t, db, "asha", "aa:bb:cc:dd:ee:01", "aa:bb:cc:dd:ee:02")

	reviewer, err := postgresql.NewUserRepository(db).Create(ctx, user.User{Username: "hr.admin", PasswordHash: "hash", Role: user.RoleAdmin})
	require.NoError(t, err)

	for _, kind := range []leave.Kind{leave.KindLeave, leave.KindPermission} {
		repo, err := postgresql.NewRequestRepository(db, kind)
		require.NoError(t, err)

		createdAt := time.Date(2025, time.November, 5, 6, 0, 0, 0, time.UTC)
		req, err := repo.Create(ctx, leave.Request{EmployeeID: emp.ID, Reason: "family", Status: leave.StatusPending, CreatedAt: createdAt})
		require.NoError(t, err)
		assert.Equal(t, kind, req.Kind)

		require.NoError(t, repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, reviewer.ID, createdAt.Add(time.Hour), nil))
		assert.ErrorIs(t, repo.UpdateStatus(ctx, req.ID, leave.StatusRejected, reviewer.ID, createdAt, nil), leave.ErrRequestAlreadyProcessed)

		count, err := repo.CountApprovedInRange(ctx, emp.ID, createdAt.AddDate(0, 0, -4), createdAt.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		counts, err := repo.CountByStatus(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCounts{Approved: 1}, counts)
	}

	_, err = postgresql.NewRequestRepository(db, leave.Kind("holiday"))
	assert.ErrorIs(t, err, leave.ErrInvalidKind)
}

func TestSummaryAndOfficeRepositories(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	emp := createEmployee(t, db, "asha", "aa:bb:cc:dd:ee:01", "aa:bb:cc:dd:ee:02")

	summaries := postgresql.NewSummaryRepository(db)
	_, err := summaries.Create(ctx, summary.MonthlySummary{EmployeeID: emp.ID, Year: 2025, Month: 11, Present: 20, Absent: 10})
	require.NoError(t, err)
	_, err = summaries.Create(ctx, summary.MonthlySummary{EmployeeID: emp.ID, Year: 2025, Month: 11})
	assert.ErrorIs(t, err, summary.ErrDuplicateSummary)

	exists, err := summaries.Exists(ctx, emp.ID, 2025, 11)
	require.NoError(t, err)
	assert.True(t, exists)

	offices := postgresql.NewOfficeConfigRepository(db)
	_, err = offices.Get(ctx)
	assert.ErrorIs(t, err, office.ErrOfficeConfigNotFound)

	_, err = offices.Create(ctx, office.OfficeConfig{MacAddress: "aa:bb:cc:dd:ee:ff"})
	require.NoError(t, err)
	_, err = offices.Create(ctx, office.OfficeConfig{MacAddress: "11:22:33:44:55:66"})
	assert.ErrorIs(t, err, office.ErrOfficeConfigExists)

	updated, err := offices.Update(ctx, office.OfficeConfig{MacAddress: "11:22:33:44:55:66"})
	require.NoError(t, err)
	assert.Equal(t, "11:22:33:44:55:66", updated.MacAddress)
}

func TestTxManager_RollsBack(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(db)

	err := postgresql.NewTxManager(db).WithinTx(ctx, func(ctx context.Context) error {
		if _, err := users.Create(ctx, user.User{Username: "temp", PasswordHash: "hash", Role: user.RoleAdmin}); err != nil {
			return err
		}
		_, err := users.Create(ctx, user.User{Username: "temp", PasswordHash: "hash", Role: user.RoleAdmin})
		return err
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	_, err = users.GetByUsername(ctx, "temp")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDashboardRepository(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDashboardRepository(db)

	asha := createEmployee(t, db, "asha", "aa:bb:cc:dd:ee:01", "aa:bb:cc:dd:ee:02")
	ravi := createEmployee(t, db, "ravi", "aa:bb:cc:dd:ee:03", "aa:bb:cc:dd:ee:04")
	gone := createEmployee(t, db, "gone", "aa:bb:cc:dd:ee:05", "aa:bb:cc:dd:ee:06")
	require.NoError(t, postgresql.NewEmployeeRepository(db).SoftDelete(ctx, gone.ID))

	active, err := repo.CountActiveEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	day := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	attendances := postgresql.NewAttendanceRepository(db)
	_, err = attendances.Create(ctx, attendance.Attendance{EmployeeID: asha.ID, Date: day, CheckInTime: day.Add(4 * time.Hour), Status: attendance.StatusPending})
	require.NoError(t, err)
	_, err = attendances.Create(ctx, attendance.Attendance{EmployeeID: ravi.ID, Date: day, CheckInTime: day.Add(5 * time.Hour), Status: attendance.StatusHalfDay})
	require.NoError(t, err)
	_, err = attendances.Create(ctx, attendance.Attendance{EmployeeID: ravi.ID, Date: day.AddDate(0, 0, -1), CheckInTime: day.Add(-20 * time.Hour), Status: attendance.StatusPresent})
	require.NoError(t, err)

	checkIns, err := repo.CountCheckInsByStatus(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, dashboard.CheckInCounts{Pending: 1, HalfDay: 1}, checkIns)

	leaves, err := postgresql.NewRequestRepository(db, leave.KindLeave)
	require.NoError(t, err)
	_, err = leaves.Create(ctx, leave.Request{EmployeeID: asha.ID, Reason: "family", Status: leave.StatusPending, CreatedAt: day})
	require.NoError(t, err)

	pending, err := repo.CountPendingRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.PendingRequests{Leaves: 1}, pending)
}
