package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/xuri/excelize/v2"
)

func TestMonthlyReportXLSX(t *testing.T) {
	report := summary.MonthlyReport{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		Year:       2025,
		Month:      11,
		Counts:     attendance.Counts{Present: 20, Absent: 5, Leave: 3, Permission: 2},
		DailyRecords: []summary.DailyRecord{
			{Date: "2025-11-01", Status: attendance.StatusPresent},
			{Date: "2025-11-02", Status: attendance.StatusLeave},
			{Date: "2025-11-03", Status: attendance.StatusAbsent},
		},
	}

	content, err := MonthlyReportXLSX(report, "Jane Doe", time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Daily"}, f.GetSheetList())

	name, _ := f.GetCellValue("Summary", "B3")
	assert.Equal(t, "Jane Doe", name)
	period, _ := f.GetCellValue("Summary", "B5")
	assert.Equal(t, "2025-11", period)
	present, _ := f.GetCellValue("Summary", "B8")
	assert.Equal(t, "20", present)
	absent, _ := f.GetCellValue("Summary", "B10")
	assert.Equal(t, "5", absent)

	rows, err := f.GetRows("Daily")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"2025-11-02", "Leave"}, rows[2])
}
