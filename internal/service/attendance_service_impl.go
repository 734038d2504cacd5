package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kintai-dev/kintai/internal/db"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/repository"
	"github.com/kintai-dev/kintai/internal/timeclock"
)

const manualTimeLayout = "2006-01-02 15:04"

type attendanceService struct {
	stamps    repository.StampRepo
	employees repository.EmployeeRepo
	settings  repository.SettingsRepo
	uow       db.UnitOfWork
}

func NewAttendanceService(stamps repository.StampRepo, employees repository.EmployeeRepo, settings repository.SettingsRepo, uow db.UnitOfWork) AttendanceService {
	return &attendanceService{stamps: stamps, employees: employees, settings: settings, uow: uow}
}

// derive builds the persisted form of a stamp: rounded time and business
// work date from the actual instant and the current settings.
func derive(code string, kind domain.StampKind, at time.Time, cfg domain.Settings) *domain.StampEvent {
	return &domain.StampEvent{
		ID:           uuid.New().String(),
		EmployeeCode: code,
		Kind:         kind,
		ActualTime:   at,
		RoundedTime:  timeclock.Round(at, kind, cfg.Rounding),
		WorkDate:     timeclock.ResolveWorkDate(at, cfg.Cutoff),
	}
}

func (s *attendanceService) PreviewStamp(ctx context.Context, code string, kind domain.StampKind, at time.Time) (*StampPreview, error) {
	if _, err := s.employees.GetByCode(ctx, code); err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	event := derive(code, kind, at, cfg)

	latest, err := s.stamps.Latest(ctx, code)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return &StampPreview{
		Event:    event,
		Sequence: timeclock.ClassifySequence(latest, kind, event.WorkDate),
		Latest:   latest,
	}, nil
}

func (s *attendanceService) RecordStamp(ctx context.Context, code string, kind domain.StampKind, at time.Time) (*StampResult, error) {
	if _, err := s.employees.GetByCode(ctx, code); err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	event := derive(code, kind, at, cfg)
	event.CreatedAt = time.Now()

	var status domain.SequenceStatus
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStamps := repository.NewSQLiteStampRepo(tx)

		// Re-classify inside the transaction so two rapid stamps cannot both
		// see a stale latest event.
		latest, err := txStamps.Latest(ctx, code)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		status = timeclock.ClassifySequence(latest, kind, event.WorkDate)
		if status.Fatal() {
			return fmt.Errorf("%s %s on %s: %w", code, kind, event.WorkDate, ErrDuplicateStamp)
		}

		return txStamps.Insert(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return &StampResult{Event: event, Sequence: status}, nil
}

func (s *attendanceService) EditDay(ctx context.Context, code, workDate string, pairs []EditPair) ([]*domain.StampEvent, error) {
	if _, err := s.employees.GetByCode(ctx, code); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.WorkDateLayout, workDate); err != nil {
		return nil, fmt.Errorf("work date %q: %w", workDate, err)
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var events []*domain.StampEvent
	for _, p := range pairs {
		inEvent, err := manualEvent(code, workDate, domain.StampIn, p.In, cfg)
		if err != nil {
			return nil, err
		}
		if inEvent != nil {
			events = append(events, inEvent)
		}
		outEvent, err := manualEvent(code, workDate, domain.StampOut, p.Out, cfg)
		if err != nil {
			return nil, err
		}
		if outEvent != nil {
			events = append(events, outEvent)
		}
	}

	if err := s.ReplaceDay(ctx, code, workDate, events); err != nil {
		return nil, err
	}
	return events, nil
}

// manualEvent parses one hand-edited HH:MM slot. Blank and "-" slots mean
// "no stamp" and return nil.
func manualEvent(code, workDate string, kind domain.StampKind, value string, cfg domain.Settings) (*domain.StampEvent, error) {
	if value == "" || value == "-" {
		return nil, nil
	}
	actual, err := time.ParseInLocation(manualTimeLayout, workDate+" "+value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", value, ErrMalformedManualTime)
	}
	return &domain.StampEvent{
		ID:           uuid.New().String(),
		EmployeeCode: code,
		Kind:         kind,
		ActualTime:   actual,
		RoundedTime:  timeclock.Round(actual, kind, cfg.Rounding),
		WorkDate:     workDate,
		CreatedAt:    time.Now(),
	}, nil
}

// ReplaceDay is the atomic delete-then-insert: if any insert fails (for
// example by exceeding the daily cap) the ledger keeps its prior state.
func (s *attendanceService) ReplaceDay(ctx context.Context, code, workDate string, events []*domain.StampEvent) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStamps := repository.NewSQLiteStampRepo(tx)
		if err := txStamps.DeleteByWorkDate(ctx, code, workDate); err != nil {
			return err
		}
		for _, e := range events {
			if err := txStamps.Insert(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *attendanceService) MonthlyReport(ctx context.Context, code string, year int, month time.Month) (*MonthlyReport, error) {
	if _, err := s.employees.GetByCode(ctx, code); err != nil {
		return nil, err
	}
	events, err := s.stamps.ListMonth(ctx, code, year, month)
	if err != nil {
		return nil, err
	}

	days := timeclock.BuildMonth(code, year, month, events)
	return &MonthlyReport{
		EmployeeCode: code,
		Year:         year,
		Month:        month,
		Days:         days,
		Total:        timeclock.TotalForMonth(days),
	}, nil
}

func (s *attendanceService) LatestStamp(ctx context.Context, code string) (*domain.StampEvent, error) {
	return s.stamps.Latest(ctx, code)
}
