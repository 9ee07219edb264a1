package attendance

import (
	"context"
	"fmt"
	"time"

	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/notification"

	"go.uber.org/zap"
)

// Reminder nudges employees who have not checked in yet. It mutates
// nothing; a double run on the same day simply double-sends.
type Reminder struct {
	repo      Repository
	employees employee.Repository
	notifier  notification.Port
	logger    *zap.Logger
}

func NewReminder(
	repo Repository,
	employees employee.Repository,
	notifier notification.Port,
	logger ...*zap.Logger,
) *Reminder {
	l := zap.L().Named("attendance.reminder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.reminder")
	}
	return &Reminder{
		repo:      repo,
		employees: employees,
		notifier:  notifier,
		logger:    l,
	}
}

// RemindMissingCheckIns returns how many employees were reminded for the
// day asOf falls on.
func (r *Reminder) RemindMissingCheckIns(ctx context.Context, asOf time.Time) (int, error) {
	day := DayOf(asOf)

	active, err := r.employees.FindAllActive(ctx)
	if err != nil {
		r.logger.Error("reminder employee list failed", zap.Error(err))
		return 0, err
	}

	rows, err := r.repo.FindAllByDate(ctx, day)
	if err != nil {
		r.logger.Error("reminder record list failed", zap.Error(err))
		return 0, err
	}
	checkedIn := make(map[string]bool, len(rows))
	for _, rec := range rows {
		if rec.CheckIn != nil {
			checkedIn[rec.EmployeeID.String()] = true
		}
	}

	reminded := 0
	for _, emp := range active {
		if checkedIn[emp.ID.String()] {
			continue
		}
		reminded++

		if err := r.notifier.Publish(ctx, notification.Event{
			EmployeeID: emp.ID.String(),
			Kind:       events.KindAttendanceReminder,
			Payload: events.AttendanceEvent{
				EventType:  events.KindAttendanceReminder,
				EmployeeID: emp.ID.String(),
				Day:        day.Format("2006-01-02"),
				Message:    "You have not checked in yet today",
				OccurredAt: time.Now().UTC(),
			},
		}); err != nil {
			r.logger.Error("reminder publish failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
		}

		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>You have not checked in yet today (%s). Please record your attendance.</p>",
			emp.FirstName,
			day.Format("2006-01-02"),
		)
		if err := r.notifier.SendEmail(ctx, []string{emp.Email}, "Check-in reminder", body); err != nil {
			r.logger.Error("reminder email failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
		}
	}

	r.logger.Info("check-in reminders sent",
		zap.String("day", day.Format("2006-01-02")),
		zap.Int("reminded", reminded),
	)
	return reminded, nil
}
