package service

import (
	"context"
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
)

// StampPreview is everything the confirmation screen needs before an insert:
// the fully derived event plus its sequence classification against the
// employee's latest stamp.
type StampPreview struct {
	Event    *domain.StampEvent
	Sequence domain.SequenceStatus
	Latest   *domain.StampEvent
}

// StampResult is a committed stamp together with the advisory status it was
// recorded under.
type StampResult struct {
	Event    *domain.StampEvent
	Sequence domain.SequenceStatus
}

// EditPair is one IN/OUT slot of a manual day edit. Values are HH:MM
// strings; blank or "-" slots are skipped.
type EditPair struct {
	In  string
	Out string
}

// MonthlyReport is the full calendar grid for one employee and month.
type MonthlyReport struct {
	EmployeeCode string
	Year         int
	Month        time.Month
	Days         []*domain.DailySummary
	Total        time.Duration
}

type AttendanceService interface {
	// PreviewStamp derives rounded time, work date and sequence status
	// without persisting anything.
	PreviewStamp(ctx context.Context, code string, kind domain.StampKind, at time.Time) (*StampPreview, error)

	// RecordStamp classifies and persists a stamp. A duplicate
	// classification fails with ErrDuplicateStamp; advisory classifications
	// are returned in the result and the insert proceeds.
	RecordStamp(ctx context.Context, code string, kind domain.StampKind, at time.Time) (*StampResult, error)

	// EditDay replaces every event of one work date from hand-edited HH:MM
	// pairs, re-deriving rounded times. All-or-nothing.
	EditDay(ctx context.Context, code, workDate string, pairs []EditPair) ([]*domain.StampEvent, error)

	// ReplaceDay atomically swaps a work date's events for an already
	// derived list.
	ReplaceDay(ctx context.Context, code, workDate string, events []*domain.StampEvent) error

	MonthlyReport(ctx context.Context, code string, year int, month time.Month) (*MonthlyReport, error)
	LatestStamp(ctx context.Context, code string) (*domain.StampEvent, error)
}

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, code string) error

	// Enroll stores the employee's feature vector. An empty vector clears
	// the enrollment and excludes the employee from identification.
	Enroll(ctx context.Context, code string, vector []float32) error
	SetPhoto(ctx context.Context, code string, photo []byte) error

	// Identify matches a live vector against the enrolled gallery. A nil
	// match is a normal negative result.
	Identify(ctx context.Context, live []float32) (*faceid.Match, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) error
}
