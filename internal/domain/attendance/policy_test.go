package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 12, hour, minute, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     Status
	}{
		{"on time full day", at(10, 5), at(16, 10), StatusPresent},
		{"afternoon arrival", at(12, 0), at(15, 30), StatusHalfDay},
		{"on time but short day", at(10, 5), at(14, 0), StatusHalfDay},
		{"exactly 11:00 full day", at(11, 0), at(17, 0), StatusPresent},
		{"11:01 full day", at(11, 1), at(17, 30), StatusHalfDay},
		{"exactly six hours", at(10, 0), at(16, 0), StatusPresent},
		{"just under three hours", at(13, 0), at(15, 59), StatusAbsent},
		{"17:59 arrival", at(17, 59), at(21, 0), StatusHalfDay},
		{"18:00 arrival", at(18, 0), at(23, 0), StatusAbsent},
		{"early bird", at(9, 30), at(18, 0), StatusAbsent},
		{"barely stayed", at(10, 0), at(10, 30), StatusAbsent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveStatus(c.checkIn, c.checkOut))
		})
	}
}

func TestDayOf(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 20:00 UTC is already the next day in Kolkata.
	ts := time.Date(2025, time.March, 12, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-13", DateKey(DayOf(ts, kolkata)))
	assert.Equal(t, "2025-03-12", DateKey(DayOf(ts, time.UTC)))
}

func TestCounts_Add(t *testing.T) {
	var c Counts
	for _, s := range []Status{StatusPresent, StatusPresent, StatusHalfDay, StatusAbsent, StatusPending, StatusLeave, StatusPermission, Status("Unknown")} {
		c.Add(s)
	}
	assert.Equal(t, Counts{Present: 2, Absent: 1, HalfDay: 1, Leave: 1, Permission: 1, Pending: 1}, c)
}
