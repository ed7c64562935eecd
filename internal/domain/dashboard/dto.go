package dashboard

// StatsResponse is the admin dashboard snapshot for the current office day
type StatsResponse struct {
	Date               string       `json:"date"` // Format: "YYYY-MM-DD"
	ActiveEmployees    int64        `json:"active_employees"`
	CheckIns           CheckInStats `json:"check_ins"`
	PendingLeaves      int64        `json:"pending_leaves"`
	PendingPermissions int64        `json:"pending_permissions"`
}

// CheckInStats breaks today's attendance records down by status
type CheckInStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Present      int64 `json:"present"`
	Absent       int64 `json:"absent"`
	HalfDay      int64 `json:"half_day"`
	NotCheckedIn int64 `json:"not_checked_in"` // active employees with no record today
}
