package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleEmployee  = "employee"
	RoleAssistant = "assistant"
)

// DefaultLeaveBalance is the yearly paid-leave allowance granted to new hires.
const DefaultLeaveBalance = 25

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'employee'"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	Position     string     `gorm:"size:100"`

	// LeaveBalance counts remaining paid-leave days. Mutated only through
	// the Ledger.
	LeaveBalance int  `gorm:"not null;default:25"`
	Active       bool `gorm:"not null;default:true"`

	// CalendarRefreshToken holds the OAuth refresh token for the employee's
	// linked calendar, nil when no calendar is linked.
	CalendarRefreshToken *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) CalendarLinked() bool {
	return e.CalendarRefreshToken != nil && *e.CalendarRefreshToken != ""
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee, RoleAssistant:
		return true
	default:
		return false
	}
}
