package employee

import (
	"time"

	"github.com/wifiattend/attendance-server/internal/pkg/macaddr"
)

type Employee struct {
	ID               string
	UserID           string
	FullName         string
	Email            *string
	PhoneNumber      *string
	Designation      *string
	MobileMacAddress string
	LaptopMacAddress string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// DTO / Join
	Username string
}

const (
	DeviceMobile = "mobile"
	DeviceLaptop = "laptop"
)

// RegisteredDevice reports which registered device deviceMac belongs to.
// Empty registrations never match.
func (e Employee) RegisteredDevice(deviceMac string) (string, bool) {
	device := macaddr.Normalize(deviceMac)
	if device == "" {
		return "", false
	}
	if m := macaddr.Normalize(e.MobileMacAddress); m != "" && m == device {
		return DeviceMobile, true
	}
	if l := macaddr.Normalize(e.LaptopMacAddress); l != "" && l == device {
		return DeviceLaptop, true
	}
	return "", false
}

func (e Employee) IsDeleted() bool {
	return e.DeletedAt != nil
}
