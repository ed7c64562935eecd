package attendance

import "time"

const (
	presentMinHours = 6.0
	halfDayMinHours = 3.0
)

// DeriveStatus classifies a completed day. checkIn must already be in the
// office location. Rules are evaluated in order and the first match wins:
//
//   - checked in between 10:00 and 11:00 inclusive and worked >= 6h: Present
//   - checked in between 10:00 and 17:59 and worked >= 3h: Half Day
//   - otherwise: Absent
func DeriveStatus(checkIn, checkOut time.Time) Status {
	totalHours := checkOut.Sub(checkIn).Hours()
	hour, minute := checkIn.Hour(), checkIn.Minute()

	if (hour == 10 || (hour == 11 && minute == 0)) && totalHours >= presentMinHours {
		return StatusPresent
	}
	if hour >= 10 && hour <= 17 && totalHours >= halfDayMinHours {
		return StatusHalfDay
	}
	return StatusAbsent
}
