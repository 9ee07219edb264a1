package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending         = "PENDING"
	StatusManagerApproved = "MANAGER_APPROVED"
	StatusApproved        = "APPROVED"
	StatusRejected        = "REJECTED"
)

const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
	TypeSpecial   = "SPECIAL"
	TypeOther     = "OTHER"
	TypePaid      = "PAID"
	TypeUnpaid    = "UNPAID"
	TypeFamily    = "FAMILY"
	TypeTraining  = "TRAINING"
)

// Leave is a single leave request. Rows are removed on cancellation, so the
// entity carries no soft-delete column.
type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'ANNUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`

	// WorkingDays counts Mon-Fri dates in [StartDate, EndDate], recomputed
	// on every date edit.
	WorkingDays int    `gorm:"type:int;not null;default:0"`
	Reason      string `gorm:"type:text;not null"`

	Status        string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`
	ReviewedBy    *uuid.UUID `gorm:"type:uuid"`
	ReviewComment *string    `gorm:"type:text"`
	ReviewedAt    *time.Time

	// CalendarEventID references the mirrored all-day event, nil until the
	// request is approved for a calendar-linked employee.
	CalendarEventID *string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

// Terminal reports whether a status accepts no further review transitions.
// Cancellation is a separate action and stays available.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// BalanceConsuming reports whether a leave type draws on the employee's
// paid-leave allowance. All other types bypass the ledger entirely.
func BalanceConsuming(leaveType string) bool {
	return leaveType == TypeAnnual || leaveType == TypePaid
}

func ValidLeaveType(leaveType string) bool {
	switch leaveType {
	case TypeAnnual, TypeSick, TypeMaternity, TypePaternity, TypeSpecial,
		TypeOther, TypePaid, TypeUnpaid, TypeFamily, TypeTraining:
		return true
	default:
		return false
	}
}

// ValidReviewTarget reports whether a status is one a reviewer may aim for.
// PENDING is the creation state, never a review target.
func ValidReviewTarget(status string) bool {
	switch status {
	case StatusManagerApproved, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
