package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actorID, actorRole string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, f ListLeaveFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, actorID, actorRole, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   employee.Repository
	departments department.Repository
	ledger      *employee.Ledger
	calendar    CalendarPort
	notifier    notification.Port
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	departments department.Repository,
	ledger *employee.Ledger,
	calendar CalendarPort,
	notifier notification.Port,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		departments: departments,
		ledger:      ledger,
		calendar:    calendar,
		notifier:    notifier,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, actorID, actorRole string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, startDate, endDate, err := validateLeaveInput(actorID, req.LeaveType, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	workingDays := CountWorkingDays(startDate, endDate)

	if BalanceConsuming(req.LeaveType) {
		if err := s.checkBalance(ctx, actorID, workingDays); err != nil {
			return LeaveResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  actorUUID,
		LeaveType:   req.LeaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		WorkingDays: workingDays,
		Reason:      req.Reason,
		Status:      StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actorID),
		zap.Int("working_days", workingDays),
	)

	s.notifyRequested(ctx, l)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, f ListLeaveFilter) ([]LeaveResponse, error) {
	switch actorRole {
	case employee.RoleAdmin, employee.RoleAssistant:
		leaves, err := s.repo.FindAll(ctx, f)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(leaves), nil
	case employee.RoleManager:
		dept, err := s.departments.FindManagedBy(ctx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				leaves, err := s.repo.FindAllByEmployee(ctx, actorID)
				if err != nil {
					return nil, err
				}
				return mapToListResponse(leaves), nil
			}
			return nil, err
		}
		leaves, err := s.repo.FindAllByDepartment(ctx, dept.ID.String())
		if err != nil {
			return nil, err
		}
		return mapToListResponse(leaves), nil
	default:
		leaves, err := s.repo.FindAllByEmployee(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(leaves), nil
	}
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	owns := l.EmployeeID.String() == actorID
	switch {
	case owns, actorRole == employee.RoleAdmin, actorRole == employee.RoleAssistant:
	case actorRole == employee.RoleManager:
		emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
		if err != nil {
			return LeaveResponse{}, err
		}
		managed, err := s.managesDepartmentOf(ctx, actorID, emp)
		if err != nil {
			return LeaveResponse{}, err
		}
		if !managed {
			return LeaveResponse{}, leaveerrors.ErrOutsideManagedDepartment
		}
	default:
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}

	return mapToResponse(*l), nil
}

// Review applies a status transition requested by a manager or an admin.
// The ledger debit on final approval shares the transaction with the
// status write; calendar and notification effects run after commit.
func (s *service) Review(ctx context.Context, actorID, actorRole, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("review leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if !ValidReviewTarget(req.Status) {
		return LeaveResponse{}, leaveerrors.ErrInvalidReviewTarget
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if Terminal(l.Status) {
		return LeaveResponse{}, leaveerrors.ErrAlreadyFinalized
	}

	emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	owns := l.EmployeeID == actorUUID
	managesDept := false
	if actorRole == employee.RoleManager {
		managesDept, err = s.managesDepartmentOf(ctx, actorID, emp)
		if err != nil {
			return LeaveResponse{}, err
		}
		if !managesDept {
			return LeaveResponse{}, leaveerrors.ErrOutsideManagedDepartment
		}
		// Reviewing one's own request is an authorization refusal, not a
		// state-machine violation.
		if owns {
			return LeaveResponse{}, leaveerrors.ErrReviewForbidden
		}
	}

	if !CanTransition(actorRole, l.Status, req.Status, owns, managesDept) {
		if actorRole != employee.RoleAdmin && actorRole != employee.RoleManager {
			return LeaveResponse{}, leaveerrors.ErrReviewForbidden
		}
		s.logger.Warn("review leave transition rejected",
			zap.String("leave_id", id),
			zap.String("role", actorRole),
			zap.String("from_status", l.Status),
			zap.String("to_status", req.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	if req.Status == StatusRejected && req.Comment == "" {
		return LeaveResponse{}, leaveerrors.ErrReviewCommentRequired
	}

	if req.Status == StatusApproved && BalanceConsuming(l.LeaveType) {
		if err := s.checkBalance(ctx, l.EmployeeID.String(), l.WorkingDays); err != nil {
			return LeaveResponse{}, err
		}
	}

	previousStatus := l.Status
	now := time.Now().UTC()
	l.Status = req.Status
	l.ReviewedBy = &actorUUID
	l.ReviewedAt = &now
	if req.Comment != "" {
		l.ReviewComment = &req.Comment
	}

	applied, err := qtx.UpdateStatus(ctx, l, previousStatus)
	if err != nil {
		s.logger.Error("review leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if !applied {
		s.logger.Warn("review leave lost status race",
			zap.String("leave_id", id),
			zap.String("expected_status", previousStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyFinalized
	}

	if req.Status == StatusApproved && BalanceConsuming(l.LeaveType) {
		if err := s.ledger.WithTx(tx).Debit(ctx, l.EmployeeID.String(), l.WorkingDays); err != nil {
			s.logger.Error("review leave debit failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("review leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("reviewed_by", actorID),
	)

	switch req.Status {
	case StatusApproved:
		s.syncApprovedToCalendar(ctx, emp, l)
		s.notifyStatusChange(ctx, l, events.KindLeaveApproved, "Your leave request has been approved")
	case StatusManagerApproved:
		s.notifyStatusChange(ctx, l, events.KindLeaveManagerApproved, "Your leave request has been pre-approved by your manager")
		s.notifyAdminsPendingReview(ctx, l, emp)
	case StatusRejected:
		if l.CalendarEventID != nil {
			if err := s.calendar.DeleteEvent(ctx, emp, l); err != nil {
				s.logger.Error("review leave calendar delete failed",
					zap.String("leave_id", id),
					zap.Error(err),
				)
			}
		}
		s.notifyStatusChange(ctx, l, events.KindLeaveRejected, "Your leave request has been rejected")
	}

	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	_, startDate, endDate, err := validateLeaveInput(actorID, req.LeaveType, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	owns := l.EmployeeID.String() == actorID
	if !CanEdit(actorRole, l.Status, owns) {
		if !owns && actorRole != employee.RoleAdmin {
			return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
		}
		return LeaveResponse{}, leaveerrors.ErrEditNotAllowed
	}

	workingDays := CountWorkingDays(startDate, endDate)

	// Balance re-check only while the request has not been debited yet.
	if !Terminal(l.Status) && BalanceConsuming(req.LeaveType) {
		if err := s.checkBalance(ctx, l.EmployeeID.String(), workingDays); err != nil {
			return LeaveResponse{}, err
		}
	}

	l.LeaveType = req.LeaveType
	l.StartDate = startDate
	l.EndDate = endDate
	l.WorkingDays = workingDays
	l.Reason = req.Reason

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success",
		zap.String("leave_id", id),
		zap.Int("working_days", workingDays),
	)

	if l.Status == StatusApproved && l.CalendarEventID != nil {
		emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
		if err != nil {
			s.logger.Error("update leave employee lookup failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return mapToResponse(*l), nil
		}
		if err := s.calendar.UpdateEvent(ctx, emp, l); err != nil {
			s.logger.Error("update leave calendar update failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
		}
	}

	return mapToResponse(*l), nil
}

// Cancel removes a request outright. An approved balance-consuming request
// credits its days back in the same transaction as the delete.
func (s *service) Cancel(ctx context.Context, actorID, actorRole, id string) error {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	owns := l.EmployeeID.String() == actorID
	if !CanCancel(actorRole, owns) {
		return leaveerrors.ErrNotRequestOwner
	}

	wasApproved := l.Status == StatusApproved

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("cancel leave delete failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return err
	}

	if wasApproved && BalanceConsuming(l.LeaveType) {
		if err := s.ledger.WithTx(tx).Credit(ctx, l.EmployeeID.String(), l.WorkingDays); err != nil {
			s.logger.Error("cancel leave credit failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("cancel leave success",
		zap.String("leave_id", id),
		zap.Bool("was_approved", wasApproved),
	)

	if wasApproved && l.CalendarEventID != nil {
		emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
		if err != nil {
			s.logger.Error("cancel leave employee lookup failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
		} else if err := s.calendar.DeleteEvent(ctx, emp, l); err != nil {
			s.logger.Error("cancel leave calendar delete failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
		}
	}

	s.notifyStatusChange(ctx, l, events.KindLeaveCancelled, "Your leave request has been cancelled")

	return nil
}

func (s *service) checkBalance(ctx context.Context, employeeID string, days int) error {
	sufficient, balance, err := s.ledger.HasSufficientBalance(ctx, employeeID, days)
	if err != nil {
		return err
	}
	if !sufficient {
		s.logger.Warn("leave balance insufficient",
			zap.String("employee_id", employeeID),
			zap.Int("current_balance", balance),
			zap.Int("requested_days", days),
		)
		return leaveerrors.ErrInsufficientBalance.WithDetails(BalanceShortfall{
			CurrentBalance: balance,
			RequestedDays:  days,
		})
	}
	return nil
}

// managesDepartmentOf resolves both sides to the same department row: the
// department the manager leads and the one the employee belongs to.
func (s *service) managesDepartmentOf(ctx context.Context, managerID string, emp *employee.Employee) (bool, error) {
	if emp.DepartmentID == nil {
		return false, nil
	}
	dept, err := s.departments.FindManagedBy(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return dept.ID == *emp.DepartmentID, nil
}

func (s *service) syncApprovedToCalendar(ctx context.Context, emp *employee.Employee, l *Leave) {
	eventID, err := s.calendar.CreateEvent(ctx, emp, l)
	if err != nil {
		s.logger.Error("leave calendar create failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return
	}
	if eventID == "" {
		return
	}
	if err := s.repo.SetCalendarEventID(ctx, l.ID.String(), &eventID); err != nil {
		s.logger.Error("leave calendar event id persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return
	}
	l.CalendarEventID = &eventID
}

// notifyRequested alerts the department manager that a new request awaits
// their review. Best effort, the created request stands regardless.
func (s *service) notifyRequested(ctx context.Context, l *Leave) {
	emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
	if err != nil {
		s.logger.Error("leave notify requested employee lookup failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return
	}
	if emp.DepartmentID == nil {
		return
	}
	dept, err := s.departments.FindByID(ctx, emp.DepartmentID.String())
	if err != nil || dept.ManagerID == nil {
		return
	}
	manager, err := s.employees.FindByID(ctx, dept.ManagerID.String())
	if err != nil {
		return
	}

	if err := s.notifier.Publish(ctx, notification.Event{
		EmployeeID: manager.ID.String(),
		Kind:       events.KindLeaveRequested,
		Payload: events.LeaveStatusEvent{
			EventType:  events.KindLeaveRequested,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Status:     l.Status,
			Message:    fmt.Sprintf("%s requested %d working day(s) of leave", emp.FullName(), l.WorkingDays),
			OccurredAt: time.Now().UTC(),
		},
	}); err != nil {
		s.logger.Error("leave requested publish failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
	}

	subject := "New leave request to review"
	body := fmt.Sprintf(
		"<p>%s requested leave from %s to %s (%d working day(s)).</p>",
		emp.FullName(),
		l.StartDate.Format("2006-01-02"),
		l.EndDate.Format("2006-01-02"),
		l.WorkingDays,
	)
	if err := s.notifier.SendEmail(ctx, []string{manager.Email}, subject, body); err != nil {
		s.logger.Error("leave requested email failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) notifyStatusChange(ctx context.Context, l *Leave, kind, message string) {
	if err := s.notifier.Publish(ctx, notification.Event{
		EmployeeID: l.EmployeeID.String(),
		Kind:       kind,
		Payload: events.LeaveStatusEvent{
			EventType:  kind,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Status:     l.Status,
			Message:    message,
			OccurredAt: time.Now().UTC(),
		},
	}); err != nil {
		s.logger.Error("leave status publish failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}

	emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
	if err != nil {
		s.logger.Error("leave status email lookup failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return
	}
	body := fmt.Sprintf(
		"<p>%s</p><p>Period: %s to %s (%d working day(s)).</p>",
		message,
		l.StartDate.Format("2006-01-02"),
		l.EndDate.Format("2006-01-02"),
		l.WorkingDays,
	)
	if err := s.notifier.SendEmail(ctx, []string{emp.Email}, "Leave request update", body); err != nil {
		s.logger.Error("leave status email failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

// notifyAdminsPendingReview invites every administrator to grant or refuse
// final approval after a manager pre-approval.
func (s *service) notifyAdminsPendingReview(ctx context.Context, l *Leave, emp *employee.Employee) {
	admins, err := s.employees.FindAllByRole(ctx, employee.RoleAdmin)
	if err != nil {
		s.logger.Error("leave admin fanout lookup failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return
	}
	if len(admins) == 0 {
		return
	}

	addresses := make([]string, 0, len(admins))
	for _, admin := range admins {
		addresses = append(addresses, admin.Email)
		if err := s.notifier.Publish(ctx, notification.Event{
			EmployeeID: admin.ID.String(),
			Kind:       events.KindLeavePendingReview,
			Payload: events.LeaveStatusEvent{
				EventType:  events.KindLeavePendingReview,
				LeaveID:    l.ID.String(),
				EmployeeID: l.EmployeeID.String(),
				Status:     l.Status,
				Message:    fmt.Sprintf("Leave request by %s awaits final approval", emp.FullName()),
				OccurredAt: time.Now().UTC(),
			},
		}); err != nil {
			s.logger.Error("leave admin fanout publish failed",
				zap.String("leave_id", l.ID.String()),
				zap.String("admin_id", admin.ID.String()),
				zap.Error(err),
			)
		}
	}

	subject := "Leave request awaiting final approval"
	body := fmt.Sprintf(
		"<p>The leave request by %s (%s to %s, %d working day(s)) was pre-approved by their manager and awaits final review.</p>",
		emp.FullName(),
		l.StartDate.Format("2006-01-02"),
		l.EndDate.Format("2006-01-02"),
		l.WorkingDays,
	)
	if err := s.notifier.SendEmail(ctx, addresses, subject, body); err != nil {
		s.logger.Error("leave admin fanout email failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
	}
}

func validateLeaveInput(actorID, leaveType, start, end, reason string) (uuid.UUID, time.Time, time.Time, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidActorID
	}
	if !ValidLeaveType(leaveType) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	if reason == "" {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrReasonRequired
	}
	startDate, err := parseDate(start)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return actorUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		WorkingDays:     l.WorkingDays,
		Reason:          l.Reason,
		Status:          l.Status,
		ReviewComment:   l.ReviewComment,
		CalendarEventID: l.CalendarEventID,
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
