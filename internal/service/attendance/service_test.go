package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/repository/memory"
)

const (
	testEmployeeID = "0191a8f0-0000-7000-8000-000000000001"
	officeMac      = "AA:BB:CC:DD:EE:FF"
	mobileMac      = "11:22:33:44:55:66"
	laptopMac      = "11-22-33-44-55-77"
)

type staticOffice struct {
	cfg office.OfficeConfig
	err error
}

func (s staticOffice) Current(ctx context.Context) (office.OfficeConfig, error) {
	return s.cfg, s.err
}

type fixedRollup struct {
	counts attendance.Counts
}

func (f fixedRollup) Rollup(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Counts, error) {
	return f.counts, nil
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

type fixture struct {
	svc      attendance.AttendanceService
	repo     *memory.AttendanceRepository
	verifier attendance.Verifier
	clock    *clock
	loc      *time.Location
}

func newFixture(t *testing.T, provider office.Provider) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	employees := memory.NewEmployeeRepository()
	_, err = employees.Create(context.Background(), employee.Employee{
		ID:               testEmployeeID,
		FullName:         "Asha Rao",
		MobileMacAddress: "11:22:33:44:55:66",
		LaptopMacAddress: "11:22:33:44:55:77",
	})
	require.NoError(t, err)

	f := &fixture{
		repo:  memory.NewAttendanceRepository(),
		clock: &clock{},
		loc:   loc,
	}
	f.verifier = NewDeviceVerifier(employees, provider)
	f.svc = NewAttendanceService(f.repo, f.verifier, fixedRollup{counts: attendance.Counts{Present: 4}}, loc, f.clock.Now)
	return f
}

// staleLookup never sees today's record, as when two check-ins race past the
// lookup before either insert lands.
type staleLookup struct {
	*memory.AttendanceRepository
}

func (s staleLookup) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func defaultOffice() office.Provider {
	return staticOffice{cfg: office.OfficeConfig{MacAddress: "aa:bb:cc:dd:ee:ff"}}
}

func (f *fixture) at(hour, minute int) {
	f.clock.now = time.Date(2025, time.March, 12, hour, minute, 0, 0, f.loc)
}

func validCheckIn() attendance.CheckInRequest {
	return attendance.CheckInRequest{WifiMac: officeMac, DeviceMac: mobileMac}
}

func TestCheckIn_Success(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(10, 5)

	resp, err := f.svc.CheckIn(context.Background(), testEmployeeID, validCheckIn())
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPending, resp.Status)
	assert.Equal(t, "10:05", resp.Time)

	rec, err := f.repo.GetByEmployeeAndDate(context.Background(), testEmployeeID, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPending, rec.Status)
	assert.Nil(t, rec.CheckOutTime)
}

func TestCheckIn_LaptopWithDifferentDelimiters(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(10, 0)

	_, err := f.svc.CheckIn(context.Background(), testEmployeeID, attendance.CheckInRequest{
		WifiMac:   "aabb.ccdd.eeff",
		DeviceMac: laptopMac,
		IPAddress: "10.0.0.12",
	})
	assert.NoError(t, err)
}

func TestCheckIn_WrongNetwork(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(10, 0)

	req := validCheckIn()
	req.WifiMac = "aa:bb:cc:dd:ee:00"
	_, err := f.svc.CheckIn(context.Background(), testEmployeeID, req)
	assert.ErrorIs(t, err, attendance.ErrWrongNetwork)
}

func TestCheckIn_UnregisteredDevice(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(10, 0)

	req := validCheckIn()
	req.DeviceMac = "de:ad:be:ef:00:01"
	_, err := f.svc.CheckIn(context.Background(), testEmployeeID, req)
	assert.ErrorIs(t, err, attendance.ErrUnregisteredDevice)
}

func TestCheckIn_ConfigurationMissing(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, staticOffice{err: office.ErrOfficeConfigNotFound})
	f.at(10, 0)
	_, err := f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrConfigurationMissing)

	f = newFixture(t, staticOffice{cfg: office.OfficeConfig{MacAddress: ""}})
	f.at(10, 0)
	_, err = f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrConfigurationMissing)

	f = newFixture(t, defaultOffice())
	f.at(10, 0)
	_, err = f.svc.CheckIn(ctx, "0191a8f0-0000-7000-8000-0000000000ff", validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrConfigurationMissing)
}

func TestCheckIn_MissingMacs(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(10, 0)

	_, err := f.svc.CheckIn(context.Background(), testEmployeeID, attendance.CheckInRequest{})
	assert.ErrorContains(t, err, "wifi_mac is required")
	assert.ErrorContains(t, err, "device_mac is required")
}

func TestCheckIn_OncePerDay(t *testing.T) {
	f := newFixture(t, defaultOffice())
	ctx := context.Background()

	f.at(10, 0)
	_, err := f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	f.at(14, 0)
	_, err = f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// next day is a new record
	f.clock.now = f.clock.now.AddDate(0, 0, 1)
	_, err = f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	assert.NoError(t, err)
}

func TestCheckOut_NotCheckedIn(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(17, 0)

	_, err := f.svc.CheckOut(context.Background(), testEmployeeID)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	f := newFixture(t, defaultOffice())
	ctx := context.Background()

	f.at(10, 5)
	_, err := f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	f.at(16, 10)
	resp, err := f.svc.CheckOut(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "16:10", resp.Time)
	assert.Equal(t, "6.08", resp.TotalHours)

	f.at(17, 0)
	_, err = f.svc.CheckOut(ctx, testEmployeeID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_DerivesStatus(t *testing.T) {
	cases := []struct {
		name               string
		inHour, inMinute   int
		outHour, outMinute int
		want               attendance.Status
	}{
		{"present", 10, 5, 16, 10, attendance.StatusPresent},
		{"half day afternoon", 12, 0, 15, 30, attendance.StatusHalfDay},
		{"half day short", 10, 5, 14, 0, attendance.StatusHalfDay},
		{"absent", 9, 0, 18, 0, attendance.StatusAbsent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, defaultOffice())
			ctx := context.Background()

			f.at(c.inHour, c.inMinute)
			_, err := f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
			require.NoError(t, err)

			f.at(c.outHour, c.outMinute)
			resp, err := f.svc.CheckOut(ctx, testEmployeeID)
			require.NoError(t, err)
			assert.Equal(t, c.want, resp.Status)

			rec, err := f.repo.GetByEmployeeAndDate(ctx, testEmployeeID, attendance.DayOf(f.clock.now, f.loc))
			require.NoError(t, err)
			assert.Equal(t, c.want, rec.Status)
			require.NotNil(t, rec.CheckOutTime)
			assert.True(t, rec.CheckOutTime.After(rec.CheckInTime))
		})
	}
}

func TestGetMyToday(t *testing.T) {
	f := newFixture(t, defaultOffice())
	ctx := context.Background()

	f.at(9, 0)
	resp, err := f.svc.GetMyToday(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Nil(t, resp.TodayStatus)
	assert.Equal(t, 4, resp.MonthlySummary.Present)

	f.at(10, 30)
	_, err = f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	resp, err = f.svc.GetMyToday(ctx, testEmployeeID)
	require.NoError(t, err)
	require.NotNil(t, resp.TodayStatus)
	assert.Equal(t, "10:30", resp.TodayStatus.CheckIn)
	assert.Nil(t, resp.TodayStatus.CheckOut)
	assert.Equal(t, attendance.StatusPending, resp.TodayStatus.Status)

	f.at(17, 0)
	_, err = f.svc.CheckOut(ctx, testEmployeeID)
	require.NoError(t, err)

	resp, err = f.svc.GetMyToday(ctx, testEmployeeID)
	require.NoError(t, err)
	require.NotNil(t, resp.TodayStatus.CheckOut)
	assert.Equal(t, "17:00", *resp.TodayStatus.CheckOut)
	assert.Equal(t, attendance.StatusPresent, resp.TodayStatus.Status)
}

func TestListAllAndByEmployee(t *testing.T) {
	f := newFixture(t, defaultOffice())
	ctx := context.Background()

	for d := 0; d < 3; d++ {
		f.clock.now = time.Date(2025, time.March, 10+d, 10, 0, 0, 0, f.loc)
		_, err := f.svc.CheckIn(ctx, testEmployeeID, validCheckIn())
		require.NoError(t, err)
	}

	list, err := f.svc.ListAll(ctx, attendance.AttendanceFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.TotalCount)
	assert.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Attendances, 2)
	assert.Equal(t, "2025-03-12", list.Attendances[0].Date)

	mine, err := f.svc.ListByEmployee(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	_, err = f.svc.ListByEmployee(ctx, "not-a-uuid")
	assert.Error(t, err)
}

func TestCheckIn_ConflictOnInsert(t *testing.T) {
	f := newFixture(t, defaultOffice())
	f.at(9, 30)
	svc := NewAttendanceService(staleLookup{f.repo}, f.verifier, fixedRollup{}, f.loc, f.clock.Now)

	_, err := svc.CheckIn(context.Background(), testEmployeeID, validCheckIn())
	require.NoError(t, err)

	f.at(9, 31)
	_, err = svc.CheckIn(context.Background(), testEmployeeID, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	records, err := f.repo.ListInRange(context.Background(), testEmployeeID, from, to)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 9, records[0].CheckInTime.In(f.loc).Hour())
	assert.Equal(t, 30, records[0].CheckInTime.In(f.loc).Minute())
}
