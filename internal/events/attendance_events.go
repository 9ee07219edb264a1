package events

import "time"

const (
	KindAttendanceRecorded     = "attendance_recorded"
	KindAttendanceReminder     = "attendance_reminder"
	KindAttendanceMarkedAbsent = "attendance_marked_absent"
)

type AttendanceEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Day        string    `json:"day"`
	Status     string    `json:"status,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
