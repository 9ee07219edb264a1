package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusOnLeave = "ON_LEAVE"
)

// LateCutoff is the clock time after which a check-in counts as late.
const (
	LateCutoffHour   = 9
	LateCutoffMinute = 0
)

// Attendance holds at most one row per employee and calendar day. The
// unique index backs the find-or-create write path.
type Attendance struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_day"`
	AttendanceDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_day"`

	CheckIn  *time.Time
	CheckOut *time.Time

	Status string  `gorm:"type:varchar(20);not null;default:'ABSENT'"`
	Note   *string `gorm:"type:text"`

	// RecordedBy is the acting recorder for manual entries, nil for rows
	// synthesized by the absence sweep.
	RecordedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}

// DayOf strips the time component so every timestamp of one calendar day
// maps to the same attendance row.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LateArrival reports whether a check-in time falls after the cutoff.
func LateArrival(t time.Time) bool {
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), LateCutoffHour, LateCutoffMinute, 0, 0, t.Location())
	return t.After(cutoff)
}
