package department

import (
	"context"
	"errors"

	departmenterrors "go-hrm/internal/department/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	AssignManager(ctx context.Context, id string, req AssignManagerRequest) (DepartmentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	d := &Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.logger.Info("department created",
		zap.String("department_id", d.ID.String()),
		zap.String("name", d.Name),
	)
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]DepartmentResponse, len(rows))
	for i, d := range rows {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}
	return mapToResponse(*d), nil
}

// AssignManager sets the department lead. The manager must already belong
// to the department so the "manager owns member" check in the leave
// workflow stays consistent.
func (s *service) AssignManager(ctx context.Context, id string, req AssignManagerRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	member, err := s.repo.IsMember(ctx, id, req.EmployeeID)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if !member {
		return DepartmentResponse{}, departmenterrors.ErrManagerNotMember
	}

	managerID := uuid.MustParse(req.EmployeeID)
	d.ManagerID = &managerID

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("assign manager persist failed",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, err
	}

	s.logger.Info("department manager assigned",
		zap.String("department_id", id),
		zap.String("manager_id", req.EmployeeID),
	)
	return mapToResponse(*d), nil
}

func mapToResponse(d Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
	}
	if d.ManagerID != nil {
		v := d.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}
