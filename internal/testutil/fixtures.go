package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
)

var testCodeCounter atomic.Int64

// Employee options
type EmployeeOption func(*domain.Employee)

func WithCode(code string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Code = code
	}
}

func WithFeature(vector []float32) EmployeeOption {
	return func(e *domain.Employee) {
		e.FaceFeature = faceid.EncodeVector(vector)
	}
}

func WithPhoto(photo []byte) EmployeeOption {
	return func(e *domain.Employee) {
		e.Photo = photo
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC()
	e := &domain.Employee{
		ID:        uuid.New().String(),
		Code:      fmt.Sprintf("EMP%03d", testCodeCounter.Add(1)),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stamp options
type StampOption func(*domain.StampEvent)

func WithRoundedTime(t time.Time) StampOption {
	return func(e *domain.StampEvent) {
		e.RoundedTime = t
	}
}

func WithWorkDate(date string) StampOption {
	return func(e *domain.StampEvent) {
		e.WorkDate = date
	}
}

// NewTestStamp builds a stamp event whose rounded time equals the actual
// time and whose work date is the actual calendar date, unless overridden.
func NewTestStamp(code string, kind domain.StampKind, actual time.Time, opts ...StampOption) *domain.StampEvent {
	e := &domain.StampEvent{
		ID:           uuid.New().String(),
		EmployeeCode: code,
		Kind:         kind,
		ActualTime:   actual,
		RoundedTime:  actual,
		WorkDate:     actual.Format(domain.WorkDateLayout),
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
