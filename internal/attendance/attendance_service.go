package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-hrm/internal/attendance/errors"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Record(ctx context.Context, recorderID, recorderRole string, req RecordAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorRole string, f ListAttendanceFilter) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, actorID, actorRole, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   employee.Repository
	departments department.Repository
	notifier    notification.Port
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	departments department.Repository,
	notifier notification.Port,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		departments: departments,
		notifier:    notifier,
		logger:      l,
	}
}

// ApplyCheck folds a check-in and/or check-out into the day's record and
// derives the status. Arrival after the cutoff marks the day late with an
// auto note when the recorder supplied none; a departure settles the day
// present when an arrival exists and absent otherwise.
func ApplyCheck(a *Attendance, checkIn, checkOut *time.Time, note string) {
	if checkIn != nil {
		a.CheckIn = checkIn
		if LateArrival(*checkIn) {
			a.Status = StatusLate
			if note == "" && a.Note == nil {
				auto := fmt.Sprintf("Checked in late at %s", checkIn.Format("15:04"))
				a.Note = &auto
			}
		} else {
			a.Status = StatusPresent
		}
	}

	if checkOut != nil {
		a.CheckOut = checkOut
		if a.CheckIn != nil {
			a.Status = StatusPresent
		} else {
			a.Status = StatusAbsent
		}
	}

	if note != "" {
		a.Note = &note
	}
}

func (s *service) Record(ctx context.Context, recorderID, recorderRole string, req RecordAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("record attendance requested",
		zap.String("recorder_id", recorderID),
		zap.String("employee_id", req.EmployeeID),
	)

	recorderUUID, err := uuid.Parse(recorderID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if req.CheckIn == nil && req.CheckOut == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNothingToRecord
	}

	checkIn, err := parseTimestamp(req.CheckIn)
	if err != nil {
		return AttendanceResponse{}, err
	}
	checkOut, err := parseTimestamp(req.CheckOut)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	day := DayOf(timestampDay(checkIn, checkOut))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, day)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, err
		}
		a = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeUUID,
			AttendanceDate: day,
			Status:         StatusAbsent,
		}
		created = true
	}

	ApplyCheck(a, checkIn, checkOut, req.Note)
	a.RecordedBy = &recorderUUID

	if created {
		err = qtx.Create(ctx, a)
	} else {
		err = qtx.Update(ctx, a)
	}
	if err != nil {
		s.logger.Error("record attendance persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	s.logger.Info("record attendance success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("day", day.Format("2006-01-02")),
		zap.String("status", a.Status),
	)

	if err := s.notifier.Publish(ctx, notification.Event{
		EmployeeID: req.EmployeeID,
		Kind:       events.KindAttendanceRecorded,
		Payload: events.AttendanceEvent{
			EventType:  events.KindAttendanceRecorded,
			EmployeeID: req.EmployeeID,
			Day:        day.Format("2006-01-02"),
			Status:     a.Status,
			Message:    "Attendance recorded",
			OccurredAt: time.Now().UTC(),
		},
	}); err != nil {
		s.logger.Error("record attendance publish failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
	}

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, actorRole string, f ListAttendanceFilter) ([]AttendanceResponse, error) {
	if actorRole != employee.RoleAdmin && actorRole != employee.RoleAssistant {
		return nil, attendanceerrors.ErrReadForbidden
	}
	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, actorID, actorRole, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	switch {
	case actorID == employeeID,
		actorRole == employee.RoleAdmin,
		actorRole == employee.RoleAssistant:
	case actorRole == employee.RoleManager:
		emp, err := s.employees.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, attendanceerrors.ErrEmployeeNotFound
			}
			return nil, err
		}
		if emp.DepartmentID == nil {
			return nil, attendanceerrors.ErrReadForbidden
		}
		dept, err := s.departments.FindManagedBy(ctx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, attendanceerrors.ErrReadForbidden
			}
			return nil, err
		}
		if dept.ID != *emp.DepartmentID {
			return nil, attendanceerrors.ErrReadForbidden
		}
	default:
		return nil, attendanceerrors.ErrReadForbidden
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func timestampDay(checkIn, checkOut *time.Time) time.Time {
	if checkIn != nil {
		return *checkIn
	}
	return *checkOut
}

func parseTimestamp(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTimestamp
	}
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		Note:           a.Note,
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	if a.RecordedBy != nil {
		v := a.RecordedBy.String()
		resp.RecordedBy = &v
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp
}
