package attendance

import (
	"context"
	"time"

	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sweepNote = "Marked absent by end-of-day sweep"

// PlanAbsences decides which rows the end-of-day sweep must write for one
// calendar day. Employees with a check-in are left untouched; everyone
// else ends the day as a single ABSENT row, whether or not a partial row
// already existed. Pure so the decision logic is testable without a clock
// or a store.
func PlanAbsences(employees []employee.Employee, existing map[string]*Attendance, day time.Time) []Attendance {
	var writes []Attendance
	for _, emp := range employees {
		if !emp.Active {
			continue
		}

		rec := existing[emp.ID.String()]
		if rec != nil && rec.CheckIn != nil {
			continue
		}
		if rec != nil && rec.Status == StatusAbsent && rec.Note != nil && *rec.Note == sweepNote {
			// Second run of the same day, already swept.
			continue
		}

		note := sweepNote
		if rec != nil {
			updated := *rec
			updated.Status = StatusAbsent
			updated.Note = &note
			writes = append(writes, updated)
			continue
		}
		writes = append(writes, Attendance{
			ID:             uuid.New(),
			EmployeeID:     emp.ID,
			AttendanceDate: DayOf(day),
			Status:         StatusAbsent,
			Note:           &note,
		})
	}
	return writes
}

// Sweeper closes out the day's attendance, synthesizing ABSENT rows for
// employees who never checked in. Running it twice in the same day is a
// no-op the second time.
type Sweeper struct {
	repo      Repository
	employees employee.Repository
	notifier  notification.Port
	logger    *zap.Logger
}

func NewSweeper(
	repo Repository,
	employees employee.Repository,
	notifier notification.Port,
	logger ...*zap.Logger,
) *Sweeper {
	l := zap.L().Named("attendance.sweeper")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.sweeper")
	}
	return &Sweeper{
		repo:      repo,
		employees: employees,
		notifier:  notifier,
		logger:    l,
	}
}

// MarkAbsences applies the sweep for the day asOf falls on and returns how
// many rows were written.
func (s *Sweeper) MarkAbsences(ctx context.Context, asOf time.Time) (int, error) {
	day := DayOf(asOf)

	active, err := s.employees.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("absence sweep employee list failed", zap.Error(err))
		return 0, err
	}

	rows, err := s.repo.FindAllByDate(ctx, day)
	if err != nil {
		s.logger.Error("absence sweep record list failed", zap.Error(err))
		return 0, err
	}
	existing := make(map[string]*Attendance, len(rows))
	for i := range rows {
		existing[rows[i].EmployeeID.String()] = &rows[i]
	}

	writes := PlanAbsences(active, existing, day)
	for i := range writes {
		w := &writes[i]
		var err error
		if _, present := existing[w.EmployeeID.String()]; present {
			err = s.repo.Update(ctx, w)
		} else {
			err = s.repo.Create(ctx, w)
		}
		if err != nil {
			s.logger.Error("absence sweep write failed",
				zap.String("employee_id", w.EmployeeID.String()),
				zap.Error(err),
			)
			return i, err
		}

		if err := s.notifier.Publish(ctx, notification.Event{
			EmployeeID: w.EmployeeID.String(),
			Kind:       events.KindAttendanceMarkedAbsent,
			Payload: events.AttendanceEvent{
				EventType:  events.KindAttendanceMarkedAbsent,
				EmployeeID: w.EmployeeID.String(),
				Day:        day.Format("2006-01-02"),
				Status:     StatusAbsent,
				Message:    "You were marked absent today",
				OccurredAt: time.Now().UTC(),
			},
		}); err != nil {
			s.logger.Error("absence sweep publish failed",
				zap.String("employee_id", w.EmployeeID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("absence sweep done",
		zap.String("day", day.Format("2006-01-02")),
		zap.Int("employees", len(active)),
		zap.Int("marked_absent", len(writes)),
	)
	return len(writes), nil
}
