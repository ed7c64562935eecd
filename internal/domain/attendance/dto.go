package attendance

import (
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type CheckInRequest struct {
	WifiMac   string `json:"wifi_mac"`
	DeviceMac string `json:"device_mac"`
	IPAddress string `json:"ip_address,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WifiMac) {
		errs = append(errs, validator.ValidationError{
			Field:   "wifi_mac",
			Message: "wifi_mac is required",
		})
	}
	if validator.IsEmpty(r.DeviceMac) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_mac",
			Message: "device_mac is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	CheckInTime string `json:"check_in_time"`
	Status      Status `json:"status"`
}

type CheckOutResponse struct {
	Time         string `json:"time"`
	CheckOutTime string `json:"check_out_time"`
	TotalHours   string `json:"total_hours"`
	Status       Status `json:"status"`
}

type TodayStatus struct {
	CheckIn  string  `json:"check_in"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   Status  `json:"status"`
}

type TodayResponse struct {
	TodayStatus    *TodayStatus `json:"today_status"`
	MonthlySummary Counts       `json:"monthly_summary"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Username     string  `json:"username,omitempty"`
	Date         string  `json:"date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	WorkHours    *string `json:"work_hours,omitempty"`
	Status       Status  `json:"status"`
	IPAddress    *string `json:"ip_address,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
	Status     *string

	Page  int
	Limit int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.Status != nil && !IsRecordStatus(Status(*f.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Pending, Present, Absent, Half Day",
		})
	}

	if f.StartDate != nil {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (f AttendanceFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
