package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
	"github.com/kintai-dev/kintai/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepo
}

func NewEmployeeService(employees repository.EmployeeRepo) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) error {
	if err := e.ValidateCode(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.employees.Create(ctx, e)
}

func (s *employeeService) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	return s.employees.GetByCode(ctx, code)
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) error {
	if err := e.ValidateCode(); err != nil {
		return err
	}
	e.UpdatedAt = time.Now()
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Delete(ctx context.Context, code string) error {
	return s.employees.Delete(ctx, code)
}

func (s *employeeService) Enroll(ctx context.Context, code string, vector []float32) error {
	e, err := s.employees.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	e.FaceFeature = faceid.EncodeVector(vector)
	e.UpdatedAt = time.Now()
	return s.employees.Update(ctx, e)
}

func (s *employeeService) SetPhoto(ctx context.Context, code string, photo []byte) error {
	e, err := s.employees.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	e.Photo = photo
	e.UpdatedAt = time.Now()
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Identify(ctx context.Context, live []float32) (*faceid.Match, error) {
	gallery, err := s.employees.ListEnrolled(ctx)
	if err != nil {
		return nil, err
	}
	return faceid.Identify(live, gallery), nil
}
