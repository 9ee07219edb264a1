package employee

import (
	"context"
	"database/sql"
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Ledger is the authoritative count of remaining paid-leave days per
// employee. The leave workflow is its only writer: debit on final approval,
// credit on cancellation of an approved request. The ledger itself enforces
// no lower bound; callers check sufficiency before transitioning.
type Ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) *Ledger {
	l := zap.L().Named("employee.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.ledger")
	}
	return &Ledger{repo: repo, logger: l}
}

// WithTx returns a ledger whose mutations run inside the given transaction,
// so a debit commits or rolls back together with the status write.
func (l *Ledger) WithTx(tx *sql.Tx) *Ledger {
	return &Ledger{repo: l.repo.WithTx(tx), logger: l.logger}
}

func (l *Ledger) Debit(ctx context.Context, employeeID string, days int) error {
	l.logger.Debug("debit leave balance",
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
	)
	return l.repo.AdjustLeaveBalance(ctx, employeeID, -days)
}

func (l *Ledger) Credit(ctx context.Context, employeeID string, days int) error {
	l.logger.Debug("credit leave balance",
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
	)
	return l.repo.AdjustLeaveBalance(ctx, employeeID, days)
}

// HasSufficientBalance reports whether the employee can cover the requested
// days, returning the current balance for error reporting.
func (l *Ledger) HasSufficientBalance(ctx context.Context, employeeID string, days int) (bool, int, error) {
	balance, err := l.repo.LeaveBalance(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, employeeerrors.ErrEmployeeNotFound
		}
		return false, 0, err
	}
	return balance >= days, balance, nil
}
