package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindAllByRole(ctx context.Context, role string) ([]Employee, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	LeaveBalance(ctx context.Context, id string) (int, error)
	AdjustLeaveBalance(ctx context.Context, id string, delta int) error
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

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRole(ctx context.Context, role string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Where("active = ?", true).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) LeaveBalance(ctx context.Context, id string) (int, error) {
	var balance int
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Select("leave_balance").
		Take(&balance).Error
	return balance, err
}

// AdjustLeaveBalance applies a signed delta as a single statement so it can
// share the caller's transaction with the status write it belongs to.
func (r *repository) AdjustLeaveBalance(ctx context.Context, id string, delta int) error {
	if r.tx != nil {
		query := `
UPDATE employees
SET leave_balance = leave_balance + $2, updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`
		_, err := r.tx.ExecContext(ctx, query, id, delta)
		return err
	}

	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		UpdateColumn("leave_balance", gorm.Expr("leave_balance + ?", delta)).Error
}
