package office

import (
	"time"

	"github.com/wifiattend/attendance-server/internal/pkg/macaddr"
)

// OfficeConfig is the single row describing the office network.
type OfficeConfig struct {
	MacAddress string    `json:"mac_address"`
	UpdatedBy  *string   `json:"updated_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MatchesNetwork reports whether wifiMac is the configured office access point.
func (c OfficeConfig) MatchesNetwork(wifiMac string) bool {
	office := macaddr.Normalize(c.MacAddress)
	return office != "" && office == macaddr.Normalize(wifiMac)
}
