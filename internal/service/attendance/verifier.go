package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/office"
)

// DeviceVerifier checks that a check-in comes from a registered device on the office network.
type DeviceVerifier struct {
	employeeRepo employee.EmployeeRepository
	office       office.Provider
}

func NewDeviceVerifier(employeeRepo employee.EmployeeRepository, provider office.Provider) *DeviceVerifier {
	return &DeviceVerifier{
		employeeRepo: employeeRepo,
		office:       provider,
	}
}

// Verify implements attendance.Verifier.
func (v *DeviceVerifier) Verify(ctx context.Context, employeeID, wifiMac, deviceMac string) (attendance.VerifiedIdentity, error) {
	emp, err := v.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("check-in rejected: employee not found", "employee_id", employeeID)
			return attendance.VerifiedIdentity{}, attendance.ErrConfigurationMissing
		}
		return attendance.VerifiedIdentity{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if emp.IsDeleted() {
		slog.Warn("check-in rejected: employee deleted", "employee_id", employeeID)
		return attendance.VerifiedIdentity{}, attendance.ErrConfigurationMissing
	}

	cfg, err := v.office.Current(ctx)
	if err != nil {
		if errors.Is(err, office.ErrOfficeConfigNotFound) {
			slog.Warn("check-in rejected: office MAC not configured", "employee_id", employeeID)
			return attendance.VerifiedIdentity{}, attendance.ErrConfigurationMissing
		}
		return attendance.VerifiedIdentity{}, fmt.Errorf("failed to load office config: %w", err)
	}
	if cfg.MacAddress == "" {
		slog.Warn("check-in rejected: office MAC empty", "employee_id", employeeID)
		return attendance.VerifiedIdentity{}, attendance.ErrConfigurationMissing
	}

	if !cfg.MatchesNetwork(wifiMac) {
		slog.Warn("check-in rejected: wrong network", "employee_id", employeeID, "wifi_mac", wifiMac)
		return attendance.VerifiedIdentity{}, attendance.ErrWrongNetwork
	}

	device, ok := emp.RegisteredDevice(deviceMac)
	if !ok {
		slog.Warn("check-in rejected: unregistered device", "employee_id", employeeID, "device_mac", deviceMac)
		return attendance.VerifiedIdentity{}, attendance.ErrUnregisteredDevice
	}

	return attendance.VerifiedIdentity{
		EmployeeID: emp.ID,
		DeviceMac:  deviceMac,
		Device:     device,
	}, nil
}
