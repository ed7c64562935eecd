package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod(t *testing.T) {
	p := Period{Year: 2024, Month: time.February, Loc: time.UTC}
	assert.Equal(t, 29, p.Days())
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC), p.End())

	nov := Period{Year: 2025, Month: time.November, Loc: time.UTC}
	assert.Equal(t, 30, nov.Days())
}

func TestSaveSummaryRequest_Validate(t *testing.T) {
	req := SaveSummaryRequest{EmployeeID: "123e4567-e89b-12d3-a456-426614174000", Year: 2025, Month: 11}
	assert.NoError(t, req.Validate())

	req.EmployeeID = "64f1c2a9e4b0a1b2c3d4e5f6"
	assert.ErrorContains(t, req.Validate(), ErrInvalidEmployeeID.Error())

	req.EmployeeID = "123e4567-e89b-12d3-a456-426614174000"
	req.Month = 13
	assert.ErrorContains(t, req.Validate(), ErrInvalidPeriod.Error())
}
