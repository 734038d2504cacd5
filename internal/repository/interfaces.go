package repository

import (
	"context"
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
)

// StampRepo is the append-only attendance ledger. Insert enforces the daily
// stamp cap atomically: the count check and the insert are one statement, so
// two concurrent stamps cannot jointly exceed the cap.
type StampRepo interface {
	Insert(ctx context.Context, e *domain.StampEvent) error
	CountByWorkDate(ctx context.Context, employeeCode, workDate string) (int, error)
	Latest(ctx context.Context, employeeCode string) (*domain.StampEvent, error)
	ListByWorkDate(ctx context.Context, employeeCode, workDate string) ([]*domain.StampEvent, error)
	ListMonth(ctx context.Context, employeeCode string, year int, month time.Month) ([]*domain.StampEvent, error)
	DeleteByWorkDate(ctx context.Context, employeeCode, workDate string) error
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	// ListEnrolled returns the identification gallery: every employee with a
	// feature vector, in code order.
	ListEnrolled(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, code string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) error
}
