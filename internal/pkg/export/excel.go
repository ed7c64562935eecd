// Package export renders attendance reports as spreadsheets.
package export

import (
	"fmt"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	dailySheet   = "Daily"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// MonthlyReportXLSX writes the counts and the daily sequence of report into a
// two-sheet workbook.
func MonthlyReportXLSX(report summary.MonthlyReport, employeeName string, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)

	period := fmt.Sprintf("%04d-%02d", report.Year, report.Month)
	cells := []struct {
		axis  string
		value interface{}
	}{
		{"A1", "MONTHLY ATTENDANCE SUMMARY"},
		{"A3", "Employee"},
		{"B3", employeeName},
		{"A4", "Employee ID"},
		{"B4", report.EmployeeID},
		{"A5", "Period"},
		{"B5", period},
		{"A7", "Status"},
		{"B7", "Days"},
		{"A8", "Present"},
		{"B8", report.Counts.Present},
		{"A9", "Half Day"},
		{"B9", report.Counts.HalfDay},
		{"A10", "Absent"},
		{"B10", report.Counts.Absent},
		{"A11", "Leave"},
		{"B11", report.Counts.Leave},
		{"A12", "Permission"},
		{"B12", report.Counts.Permission},
		{"A13", "Pending"},
		{"B13", report.Counts.Pending},
		{"A15", fmt.Sprintf("Generated at: %s", generatedAt.Format("02 January 2006 15:04:05"))},
	}
	for _, c := range cells {
		if err := f.SetCellValue(summarySheet, c.axis, c.value); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", c.axis, err)
		}
	}
	_ = f.MergeCell(summarySheet, "A1", "B1")
	_ = f.SetCellStyle(summarySheet, "A1", "B1", headerStyle)
	_ = f.SetCellStyle(summarySheet, "A7", "B7", headerStyle)
	_ = f.SetRowHeight(summarySheet, 1, 25)
	_ = f.SetColWidth(summarySheet, "A", "A", 25)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, fmt.Errorf("failed to create daily sheet: %w", err)
	}
	_ = f.SetCellValue(dailySheet, "A1", "Date")
	_ = f.SetCellValue(dailySheet, "B1", "Status")
	_ = f.SetCellStyle(dailySheet, "A1", "B1", headerStyle)
	for i, day := range report.DailyRecords {
		row := i + 2
		if err := f.SetCellValue(dailySheet, fmt.Sprintf("A%d", row), day.Date); err != nil {
			return nil, fmt.Errorf("failed to write daily row %d: %w", row, err)
		}
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("B%d", row), string(day.Status))
	}
	_ = f.SetColWidth(dailySheet, "A", "B", 16)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
