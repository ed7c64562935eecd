package office

import (
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type UpsertOfficeConfigRequest struct {
	MacAddress string `json:"mac_address"`
}

func (r *UpsertOfficeConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MacAddress) {
		errs = append(errs, validator.ValidationError{
			Field:   "mac_address",
			Message: "mac_address is required",
		})
	} else if !validator.IsValidMAC(r.MacAddress) {
		errs = append(errs, validator.ValidationError{
			Field:   "mac_address",
			Message: "mac_address must contain 12 hexadecimal digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
