package leave

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLeaveRepo struct {
	leaves map[string]*Leave

	// updateStatusFn overrides the conditional write when set, used to
	// simulate a reviewer losing the guard race.
	updateStatusFn func(ctx context.Context, l *Leave, expectedStatus string) (bool, error)
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[string]*Leave{}}
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, l *Leave) error {
	cp := *l
	f.leaves[l.ID.String()] = &cp
	return nil
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*Leave, error) {
	l, ok := f.leaves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaveRepo) FindAll(ctx context.Context, filter ListLeaveFilter) ([]Leave, error) {
	var out []Leave
	for _, l := range f.leaves {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var out []Leave
	for _, l := range f.leaves {
		if l.EmployeeID.String() == employeeID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) FindAllByDepartment(ctx context.Context, departmentID string) ([]Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, l *Leave) error {
	cp := *l
	f.leaves[l.ID.String()] = &cp
	return nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, l *Leave, expectedStatus string) (bool, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, l, expectedStatus)
	}
	stored, ok := f.leaves[l.ID.String()]
	if !ok || stored.Status != expectedStatus {
		return false, nil
	}
	stored.Status = l.Status
	stored.ReviewedBy = l.ReviewedBy
	stored.ReviewComment = l.ReviewComment
	stored.ReviewedAt = l.ReviewedAt
	return true, nil
}

func (f *fakeLeaveRepo) SetCalendarEventID(ctx context.Context, id string, eventID *string) error {
	if stored, ok := f.leaves[id]; ok {
		stored.CalendarEventID = eventID
	}
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	delete(f.leaves, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	balances  map[string]int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[string]*employee.Employee{},
		balances:  map[string]int{},
	}
}

func (f *fakeEmployeeRepo) add(e *employee.Employee, balance int) {
	f.employees[e.ID.String()] = e
	f.balances[e.ID.String()] = balance
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindAllByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Role == role {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.DepartmentID != nil && e.DepartmentID.String() == departmentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) LeaveBalance(ctx context.Context, id string) (int, error) {
	balance, ok := f.balances[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return balance, nil
}

func (f *fakeEmployeeRepo) AdjustLeaveBalance(ctx context.Context, id string, delta int) error {
	f.balances[id] += delta
	return nil
}

type fakeDepartmentRepo struct {
	departments map[string]*department.Department
	managedBy   map[string]*department.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments: map[string]*department.Department{},
		managedBy:   map[string]*department.Department{},
	}
}

func (f *fakeDepartmentRepo) add(d *department.Department) {
	f.departments[d.ID.String()] = d
	if d.ManagerID != nil {
		f.managedBy[d.ManagerID.String()] = d
	}
}

func (f *fakeDepartmentRepo) WithTx(tx *sql.Tx) department.Repository { return f }

func (f *fakeDepartmentRepo) Create(ctx context.Context, d *department.Department) error {
	f.add(d)
	return nil
}

func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}

func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id string) (*department.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) FindManagedBy(ctx context.Context, managerID string) (*department.Department, error) {
	d, ok := f.managedBy[managerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) IsMember(ctx context.Context, departmentID, employeeID string) (bool, error) {
	return false, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, d *department.Department) error {
	f.add(d)
	return nil
}

type fakeCalendar struct {
	created []string
	updated []string
	deleted []string
	eventID string
	err     error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, emp *employee.Employee, l *Leave) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, l.ID.String())
	return f.eventID, nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, emp *employee.Employee, l *Leave) error {
	f.updated = append(f.updated, l.ID.String())
	return f.err
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, emp *employee.Employee, l *Leave) error {
	f.deleted = append(f.deleted, l.ID.String())
	return f.err
}

type fakeNotifier struct {
	published []notification.Event
	emails    [][]string
}

func (f *fakeNotifier) Publish(ctx context.Context, ev notification.Event) error {
	f.published = append(f.published, ev)
	return nil
}

func (f *fakeNotifier) SendEmail(ctx context.Context, to []string, subject, htmlBody string) error {
	f.emails = append(f.emails, to)
	return nil
}

type leaveFixture struct {
	svc       Service
	db        *sql.DB
	mock      sqlmock.Sqlmock
	repo      *fakeLeaveRepo
	employees *fakeEmployeeRepo
	depts     *fakeDepartmentRepo
	calendar  *fakeCalendar
	notifier  *fakeNotifier

	deptID     uuid.UUID
	adminID    uuid.UUID
	managerID  uuid.UUID
	employeeID uuid.UUID
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &leaveFixture{
		db:        db,
		mock:      mock,
		repo:      newFakeLeaveRepo(),
		employees: newFakeEmployeeRepo(),
		depts:     newFakeDepartmentRepo(),
		calendar:  &fakeCalendar{eventID: "evt-123"},
		notifier:  &fakeNotifier{},

		deptID:     uuid.New(),
		adminID:    uuid.New(),
		managerID:  uuid.New(),
		employeeID: uuid.New(),
	}

	token := "refresh-token"
	f.employees.add(&employee.Employee{
		ID: f.adminID, FirstName: "Ada", LastName: "Admin",
		Email: "ada@corp.test", Role: employee.RoleAdmin, Active: true,
	}, 25)
	f.employees.add(&employee.Employee{
		ID: f.managerID, FirstName: "Max", LastName: "Manager",
		Email: "max@corp.test", Role: employee.RoleManager,
		DepartmentID: &f.deptID, Active: true,
	}, 25)
	f.employees.add(&employee.Employee{
		ID: f.employeeID, FirstName: "Eve", LastName: "Engineer",
		Email: "eve@corp.test", Role: employee.RoleEmployee,
		DepartmentID: &f.deptID, Active: true,
		CalendarRefreshToken: &token,
	}, 10)

	f.depts.add(&department.Department{
		ID: f.deptID, Name: "Engineering", ManagerID: &f.managerID,
	})

	ledger := employee.NewLedger(f.employees)
	f.svc = NewService(db, f.repo, f.employees, f.depts, ledger, f.calendar, f.notifier)
	return f
}

func (f *leaveFixture) expectTx() {
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
}

func (f *leaveFixture) seedLeave(t *testing.T, status string, days int) *Leave {
	t.Helper()
	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  f.employeeID,
		LeaveType:   TypeAnnual,
		StartDate:   date("2024-01-01"),
		EndDate:     date("2024-01-05"),
		WorkingDays: days,
		Reason:      "family trip",
		Status:      status,
	}
	require.NoError(t, f.repo.Create(context.Background(), l))
	return l
}

func TestCreateLeaveComputesWorkingDays(t *testing.T) {
	f := newLeaveFixture(t)
	f.expectTx()

	resp, err := f.svc.Create(context.Background(), f.employeeID.String(), employee.RoleEmployee, CreateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		Reason:    "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, 5, resp.WorkingDays)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
	require.NoError(t, f.mock.ExpectationsWereMet())

	// Manager is alerted about the new request.
	require.Len(t, f.notifier.published, 1)
	assert.Equal(t, events.KindLeaveRequested, f.notifier.published[0].Kind)
	assert.Equal(t, f.managerID.String(), f.notifier.published[0].EmployeeID)
}

func TestCreateLeaveInsufficientBalance(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.Create(context.Background(), f.employeeID.String(), employee.RoleEmployee, CreateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-19",
		Reason:    "long trip",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInsufficientBalance, appErr.Code)
	shortfall, ok := appErr.Details.(BalanceShortfall)
	require.True(t, ok)
	assert.Equal(t, 10, shortfall.CurrentBalance)
	assert.Equal(t, 15, shortfall.RequestedDays)
	assert.Empty(t, f.repo.leaves)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
}

func TestCreateLeaveNonConsumingTypeSkipsBalance(t *testing.T) {
	f := newLeaveFixture(t)
	f.expectTx()

	resp, err := f.svc.Create(context.Background(), f.employeeID.String(), employee.RoleEmployee, CreateLeaveRequest{
		LeaveType: TypeSick,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-19",
		Reason:    "medical",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, 15, resp.WorkingDays)
}

func TestCreateLeaveZeroWorkingDaysAccepted(t *testing.T) {
	f := newLeaveFixture(t)
	f.expectTx()

	resp, err := f.svc.Create(context.Background(), f.employeeID.String(), employee.RoleEmployee, CreateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-06",
		EndDate:   "2024-01-07",
		Reason:    "weekend move",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.WorkingDays)
}

func TestReviewPendingToApprovedIsInvalid(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.adminID.String(), employee.RoleAdmin, l.ID.String(), ReviewLeaveRequest{
		Status: StatusApproved,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	stored, _ := f.repo.FindByID(context.Background(), l.ID.String())
	assert.Equal(t, StatusPending, stored.Status)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
}

func TestReviewManagerPreApproval(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.expectTx()

	resp, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status: StatusManagerApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusManagerApproved, resp.Status)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])

	// Employee plus every admin get a realtime event.
	kinds := map[string]bool{}
	for _, ev := range f.notifier.published {
		kinds[ev.Kind] = true
	}
	assert.True(t, kinds[events.KindLeaveManagerApproved])
	assert.True(t, kinds[events.KindLeavePendingReview])
}

func TestReviewManagerCannotFinalApprove(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusManagerApproved, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status: StatusApproved,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
}

func TestReviewManagerOutsideDepartment(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)

	otherManager := uuid.New()
	otherDept := uuid.New()
	f.employees.add(&employee.Employee{
		ID: otherManager, FirstName: "Oda", LastName: "Other",
		Email: "oda@corp.test", Role: employee.RoleManager, Active: true,
	}, 25)
	f.depts.add(&department.Department{
		ID: otherDept, Name: "Sales", ManagerID: &otherManager,
	})

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), otherManager.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status: StatusManagerApproved,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrOutsideManagedDepartment)
	stored, _ := f.repo.FindByID(context.Background(), l.ID.String())
	assert.Equal(t, StatusPending, stored.Status)
}

func TestReviewManagerOwnRequestForbidden(t *testing.T) {
	f := newLeaveFixture(t)

	own := &Leave{
		ID:          uuid.New(),
		EmployeeID:  f.managerID,
		LeaveType:   TypeAnnual,
		StartDate:   date("2024-01-01"),
		EndDate:     date("2024-01-05"),
		WorkingDays: 5,
		Reason:      "family trip",
		Status:      StatusPending,
	}
	require.NoError(t, f.repo.Create(context.Background(), own))

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, own.ID.String(), ReviewLeaveRequest{
		Status: StatusManagerApproved,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrReviewForbidden)
	stored, _ := f.repo.FindByID(context.Background(), own.ID.String())
	assert.Equal(t, StatusPending, stored.Status)
}

func TestReviewRejectRequiresComment(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status: StatusRejected,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrReviewCommentRequired)
	stored, _ := f.repo.FindByID(context.Background(), l.ID.String())
	assert.Equal(t, StatusPending, stored.Status)
}

func TestReviewRejectWithComment(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.expectTx()

	resp, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status:  StatusRejected,
		Comment: "coverage gap that week",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	require.NotNil(t, resp.ReviewComment)
	assert.Equal(t, "coverage gap that week", *resp.ReviewComment)
}

func TestReviewAdminFinalApprovalDebitsAndSyncsCalendar(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusManagerApproved, 3)
	f.expectTx()

	resp, err := f.svc.Review(context.Background(), f.adminID.String(), employee.RoleAdmin, l.ID.String(), ReviewLeaveRequest{
		Status: StatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, 7, f.employees.balances[f.employeeID.String()])

	require.Len(t, f.calendar.created, 1)
	stored, _ := f.repo.FindByID(context.Background(), l.ID.String())
	require.NotNil(t, stored.CalendarEventID)
	assert.Equal(t, "evt-123", *stored.CalendarEventID)
}

func TestReviewApprovalInsufficientBalance(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusManagerApproved, 15)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.adminID.String(), employee.RoleAdmin, l.ID.String(), ReviewLeaveRequest{
		Status: StatusApproved,
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInsufficientBalance, appErr.Code)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
	stored, _ := f.repo.FindByID(context.Background(), l.ID.String())
	assert.Equal(t, StatusManagerApproved, stored.Status)
}

func TestReviewTerminalRequest(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusRejected, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.adminID.String(), employee.RoleAdmin, l.ID.String(), ReviewLeaveRequest{
		Status:  StatusRejected,
		Comment: "again",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyFinalized)
}

func TestReviewLostStatusRace(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)

	// Another reviewer wins between the read and the conditional write.
	f.repo.updateStatusFn = func(ctx context.Context, l *Leave, expectedStatus string) (bool, error) {
		return false, nil
	}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Review(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), ReviewLeaveRequest{
		Status: StatusManagerApproved,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyFinalized)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
}

func TestUpdateRecomputesWorkingDays(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.expectTx()

	resp, err := f.svc.Update(context.Background(), f.employeeID.String(), employee.RoleEmployee, l.ID.String(), UpdateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
		Reason:    "shorter trip",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.WorkingDays)
}

func TestUpdateNonPendingForbiddenForOwner(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusManagerApproved, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Update(context.Background(), f.employeeID.String(), employee.RoleEmployee, l.ID.String(), UpdateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
		Reason:    "shorter trip",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrEditNotAllowed)
}

func TestUpdateByStrangerForbidden(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Update(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String(), UpdateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
		Reason:    "not mine",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
}

func TestAdminEditApprovedUpdatesCalendar(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusApproved, 5)
	eventID := "evt-old"
	f.repo.leaves[l.ID.String()].CalendarEventID = &eventID
	f.expectTx()

	_, err := f.svc.Update(context.Background(), f.adminID.String(), employee.RoleAdmin, l.ID.String(), UpdateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-02",
		EndDate:   "2024-01-04",
		Reason:    "corrected dates",
	})

	require.NoError(t, err)
	assert.Len(t, f.calendar.updated, 1)
	assert.Empty(t, f.calendar.created)
}

func TestCancelApprovedCreditsBackAndDeletesEvent(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusApproved, 3)
	eventID := "evt-123"
	f.repo.leaves[l.ID.String()].CalendarEventID = &eventID
	f.employees.balances[f.employeeID.String()] = 7
	f.expectTx()

	err := f.svc.Cancel(context.Background(), f.employeeID.String(), employee.RoleEmployee, l.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
	assert.Len(t, f.calendar.deleted, 1)
	_, findErr := f.repo.FindByID(context.Background(), l.ID.String())
	assert.ErrorIs(t, findErr, gorm.ErrRecordNotFound)
}

func TestCancelPendingHasNoLedgerEffect(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 3)
	f.expectTx()

	err := f.svc.Cancel(context.Background(), f.employeeID.String(), employee.RoleEmployee, l.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 10, f.employees.balances[f.employeeID.String()])
	assert.Empty(t, f.calendar.deleted)
}

func TestCancelByStrangerForbidden(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 3)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.Cancel(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String())

	assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
}

// TestLeaveLifecycle walks the full workflow: request, manager
// pre-approval, admin approval with debit and calendar sync, then
// cancellation with credit back and event deletion.
func TestLeaveLifecycle(t *testing.T) {
	f := newLeaveFixture(t)
	ctx := context.Background()
	employeeKey := f.employeeID.String()

	// Request 3 working days of annual leave, balance 10.
	f.expectTx()
	created, err := f.svc.Create(ctx, employeeKey, employee.RoleEmployee, CreateLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2024-01-03",
		EndDate:   "2024-01-05",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, 3, created.WorkingDays)
	assert.Equal(t, 10, f.employees.balances[employeeKey])

	// Manager pre-approves, balance untouched.
	f.expectTx()
	preApproved, err := f.svc.Review(ctx, f.managerID.String(), employee.RoleManager, created.ID, ReviewLeaveRequest{
		Status: StatusManagerApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusManagerApproved, preApproved.Status)
	assert.Equal(t, 10, f.employees.balances[employeeKey])

	// Admin grants final approval: debit and calendar event.
	f.expectTx()
	approved, err := f.svc.Review(ctx, f.adminID.String(), employee.RoleAdmin, created.ID, ReviewLeaveRequest{
		Status: StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.Equal(t, 7, f.employees.balances[employeeKey])
	stored, _ := f.repo.FindByID(ctx, created.ID)
	require.NotNil(t, stored.CalendarEventID)

	// Employee cancels: credit back, event deleted, row gone.
	f.expectTx()
	require.NoError(t, f.svc.Cancel(ctx, employeeKey, employee.RoleEmployee, created.ID))
	assert.Equal(t, 10, f.employees.balances[employeeKey])
	assert.Len(t, f.calendar.deleted, 1)
	_, findErr := f.repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, findErr, gorm.ErrRecordNotFound)

	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGetByIDScoping(t *testing.T) {
	f := newLeaveFixture(t)
	l := f.seedLeave(t, StatusPending, 5)

	t.Run("owner reads own request", func(t *testing.T) {
		resp, err := f.svc.GetByID(context.Background(), f.employeeID.String(), employee.RoleEmployee, l.ID.String())
		require.NoError(t, err)
		assert.Equal(t, l.ID.String(), resp.ID)
	})

	t.Run("same department manager reads it", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), f.managerID.String(), employee.RoleManager, l.ID.String())
		require.NoError(t, err)
	})

	t.Run("unrelated employee is refused", func(t *testing.T) {
		stranger := uuid.New()
		f.employees.add(&employee.Employee{
			ID: stranger, FirstName: "Sam", LastName: "Stranger",
			Email: "sam@corp.test", Role: employee.RoleEmployee, Active: true,
		}, 25)

		_, err := f.svc.GetByID(context.Background(), stranger.String(), employee.RoleEmployee, l.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), f.adminID.String(), employee.RoleAdmin, uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}
