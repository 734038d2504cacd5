package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/testutil"
)

func TestSettingsRepo_FreshDatabaseHasDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestSettingsRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	want := domain.Settings{
		Rounding: domain.RoundingConfig{
			IntervalMin:  15,
			InDirection:  domain.RoundDown,
			OutDirection: domain.RoundUp,
		},
		Cutoff: domain.CutoffConfig{Hour: 5, Minute: 30},
	}
	require.NoError(t, repo.Upsert(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Upsert again replaces, never duplicates, the single row.
	want.Rounding.IntervalMin = 30
	require.NoError(t, repo.Upsert(ctx, want))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Rounding.IntervalMin)
}

func TestSettingsRepo_GetClampsHandEditedRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	_, err := database.Exec(`UPDATE settings
		SET rounding_interval = 7, cutoff_hour = 11, cutoff_minute = 99
		WHERE id = 'default'`)
	require.NoError(t, err)

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rounding.IntervalMin, "unknown interval reads as rounding off")
	assert.Equal(t, 11, s.Cutoff.Hour)
	assert.Equal(t, 59, s.Cutoff.Minute)
}
