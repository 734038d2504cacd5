package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kintai-dev/kintai/internal/db"
	"github.com/kintai-dev/kintai/internal/domain"
)

// SQLiteSettingsRepo stores the single terminal configuration row.
type SQLiteSettingsRepo struct {
	conn db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{conn: conn}
}

// Get loads the settings row. Values are clamped into their valid ranges so
// a hand-edited database cannot produce an unusable configuration.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	query := `SELECT rounding_interval, in_direction, out_direction, cutoff_hour, cutoff_minute
		FROM settings WHERE id = 'default'`
	var s domain.Settings
	var inDir, outDir string
	err := r.conn.QueryRowContext(ctx, query).Scan(
		&s.Rounding.IntervalMin, &inDir, &outDir, &s.Cutoff.Hour, &s.Cutoff.Minute,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	s.Rounding.InDirection = domain.RoundingDirection(inDir)
	s.Rounding.OutDirection = domain.RoundingDirection(outDir)
	return s.Clamp(), nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s domain.Settings) error {
	query := `INSERT INTO settings (id, rounding_interval, in_direction, out_direction, cutoff_hour, cutoff_minute)
		VALUES ('default', ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			rounding_interval = excluded.rounding_interval,
			in_direction      = excluded.in_direction,
			out_direction     = excluded.out_direction,
			cutoff_hour       = excluded.cutoff_hour,
			cutoff_minute     = excluded.cutoff_minute`
	_, err := r.conn.ExecContext(ctx, query,
		s.Rounding.IntervalMin,
		string(s.Rounding.InDirection),
		string(s.Rounding.OutDirection),
		s.Cutoff.Hour,
		s.Cutoff.Minute,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
