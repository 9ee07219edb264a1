package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)
	FindAll(ctx context.Context, f ListAttendanceFilter) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	FindAllByDate(ctx context.Context, day time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", day).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context, f ListAttendanceFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Order("attendance_date DESC")
	if f.Date != "" {
		q = q.Where("attendances.attendance_date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("attendances.status = ?", f.Status)
	}
	if f.DepartmentID != "" {
		q = q.
			Joins("JOIN employees ON employees.id = attendances.employee_id").
			Where("employees.department_id = ?", f.DepartmentID)
	}

	var rows []Attendance
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByDate(ctx context.Context, day time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("attendance_date = ?", day).
		Find(&rows).Error
	return rows, err
}
