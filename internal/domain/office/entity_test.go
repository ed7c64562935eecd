package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfficeConfig_MatchesNetwork(t *testing.T) {
	cfg := OfficeConfig{MacAddress: "AA:BB:CC:DD:EE:FF"}

	assert.True(t, cfg.MatchesNetwork("aa-bb-cc-dd-ee-ff"))
	assert.True(t, cfg.MatchesNetwork("aabbccddeeff"))
	assert.False(t, cfg.MatchesNetwork("aa:bb:cc:dd:ee:00"))
	assert.False(t, cfg.MatchesNetwork(""))

	empty := OfficeConfig{}
	assert.False(t, empty.MatchesNetwork(""))
}
