package department

import (
	"context"
	"database/sql"
	"testing"

	departmenterrors "go-hrm/internal/department/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, d *Department) error
	findAllFn       func(ctx context.Context) ([]Department, error)
	findByIDFn      func(ctx context.Context, id string) (*Department, error)
	findManagedByFn func(ctx context.Context, managerID string) (*Department, error)
	isMemberFn      func(ctx context.Context, departmentID, employeeID string) (bool, error)
	updateFn        func(ctx context.Context, d *Department) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, d *Department) error {
	return f.createFn(ctx, d)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Department, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Department, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) FindManagedBy(ctx context.Context, managerID string) (*Department, error) {
	return f.findManagedByFn(ctx, managerID)
}

func (f *fakeRepo) IsMember(ctx context.Context, departmentID, employeeID string) (bool, error) {
	return f.isMemberFn(ctx, departmentID, employeeID)
}

func (f *fakeRepo) Update(ctx context.Context, d *Department) error {
	return f.updateFn(ctx, d)
}

func TestCreateDepartment(t *testing.T) {
	var saved *Department
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Department) error {
			saved = d
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), CreateDepartmentRequest{
		Name:        "Engineering",
		Description: "Product engineering",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Engineering", resp.Name)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.Nil(t, resp.ManagerID)
}

func TestGetByIDInvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestAssignManagerRequiresMembership(t *testing.T) {
	deptID := uuid.New()
	outsider := uuid.NewString()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return &Department{ID: deptID, Name: "Engineering"}, nil
		},
		isMemberFn: func(ctx context.Context, departmentID, employeeID string) (bool, error) {
			return false, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.AssignManager(context.Background(), deptID.String(), AssignManagerRequest{
		EmployeeID: outsider,
	})

	assert.ErrorIs(t, err, departmenterrors.ErrManagerNotMember)
}

func TestAssignManagerSuccess(t *testing.T) {
	deptID := uuid.New()
	managerID := uuid.NewString()

	var updated *Department
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return &Department{ID: deptID, Name: "Engineering"}, nil
		},
		isMemberFn: func(ctx context.Context, departmentID, employeeID string) (bool, error) {
			return true, nil
		},
		updateFn: func(ctx context.Context, d *Department) error {
			updated = d
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.AssignManager(context.Background(), deptID.String(), AssignManagerRequest{
		EmployeeID: managerID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, managerID, *resp.ManagerID)
	assert.Equal(t, managerID, updated.ManagerID.String())
}
