package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department membership is carried on the employee row (department_id);
// ManagerID points at the employee leading the department, and the manager
// must themselves be a member.
type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"size:255;uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	ManagerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}
