package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context, f ListLeaveFilter) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindAllByDepartment(ctx context.Context, departmentID string) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	UpdateStatus(ctx context.Context, l *Leave, expectedStatus string) (bool, error)
	SetCalendarEventID(ctx context.Context, id string, eventID *string) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, f ListLeaveFilter) ([]Leave, error) {
	q := r.db.WithContext(ctx).Order("start_date DESC")
	if f.Status != "" {
		q = q.Where("leaves.status = ?", f.Status)
	}
	if f.DepartmentID != "" {
		q = q.
			Joins("JOIN employees ON employees.id = leaves.employee_id").
			Where("employees.department_id = ?", f.DepartmentID)
	}

	var leaves []Leave
	err := q.Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByDepartment(ctx context.Context, departmentID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = leaves.employee_id").
		Where("employees.department_id = ?", departmentID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// UpdateStatus writes the review outcome conditionally on the expected
// pre-state so two concurrent reviews cannot double-apply. Returns false
// when the guard did not match.
func (r *repository) UpdateStatus(ctx context.Context, l *Leave, expectedStatus string) (bool, error) {
	if r.tx != nil {
		query := `
UPDATE leaves
SET status = $2, reviewed_by = $3, review_comment = $4, reviewed_at = $5, updated_at = NOW()
WHERE id = $1 AND status = $6
`
		res, err := r.tx.ExecContext(ctx, query,
			l.ID, l.Status, l.ReviewedBy, l.ReviewComment, l.ReviewedAt, expectedStatus)
		if err != nil {
			return false, err
		}
		rows, err := res.RowsAffected()
		return rows > 0, err
	}

	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", l.ID).
		Where("status = ?", expectedStatus).
		Updates(map[string]any{
			"status":         l.Status,
			"reviewed_by":    l.ReviewedBy,
			"review_comment": l.ReviewComment,
			"reviewed_at":    l.ReviewedAt,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) SetCalendarEventID(ctx context.Context, id string, eventID *string) error {
	return r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		UpdateColumn("calendar_event_id", eventID).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `DELETE FROM leaves WHERE id = $1`, id)
		return err
	}
	return r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id).Error
}
