package service

import (
	"context"
	"fmt"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

// Update validates and persists operator-supplied settings. Unlike loading,
// which clamps, an explicit update with out-of-range values is rejected so
// the operator notices the mistake.
func (s *settingsService) Update(ctx context.Context, cfg domain.Settings) error {
	switch cfg.Rounding.IntervalMin {
	case 0, 15, 30:
	default:
		return fmt.Errorf("rounding interval %d (want 0, 15 or 30): %w", cfg.Rounding.IntervalMin, ErrInvalidSettings)
	}
	if cfg.Rounding.InDirection != domain.RoundUp && cfg.Rounding.InDirection != domain.RoundDown {
		return fmt.Errorf("in-direction %q: %w", cfg.Rounding.InDirection, ErrInvalidSettings)
	}
	if cfg.Rounding.OutDirection != domain.RoundUp && cfg.Rounding.OutDirection != domain.RoundDown {
		return fmt.Errorf("out-direction %q: %w", cfg.Rounding.OutDirection, ErrInvalidSettings)
	}
	if cfg.Cutoff.Hour < 0 || cfg.Cutoff.Hour > 11 {
		return fmt.Errorf("cutoff hour %d (want 0-11): %w", cfg.Cutoff.Hour, ErrInvalidSettings)
	}
	if cfg.Cutoff.Minute < 0 || cfg.Cutoff.Minute > 59 {
		return fmt.Errorf("cutoff minute %d (want 0-59): %w", cfg.Cutoff.Minute, ErrInvalidSettings)
	}
	return s.settings.Upsert(ctx, cfg)
}
