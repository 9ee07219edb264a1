package leave

import (
	"context"

	"go-hrm/internal/employee"
)

// CalendarPort mirrors approved leave into the employee's external
// calendar. Every method is a no-op when the employee has no linked
// calendar credential: CreateEvent then returns an empty event id and no
// error. Failures are logged by the workflow and never roll back the
// state transition that triggered them.
//
type CalendarPort interface {
	CreateEvent(ctx context.Context, emp *employee.Employee, l *Leave) (string, error)
	UpdateEvent(ctx context.Context, emp *employee.Employee, l *Leave) error
	DeleteEvent(ctx context.Context, emp *employee.Employee, l *Leave) error
}
