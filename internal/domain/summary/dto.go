package summary

import (
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type SaveSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *SaveSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: ErrInvalidEmployeeID.Error(),
		})
	}
	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidPeriod.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlySummaryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	HalfDay    int    `json:"half_day"`
	Leave      int    `json:"leave"`
	Permission int    `json:"permission"`
	CreatedAt  string `json:"created_at"`
}

func NewMonthlySummaryResponse(s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Year:       s.Year,
		Month:      s.Month,
		Present:    s.Present,
		Absent:     s.Absent,
		HalfDay:    s.HalfDay,
		Leave:      s.Leave,
		Permission: s.Permission,
		CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ExportFile struct {
	Filename string
	Content  []byte
}

type FinalizeResult struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
