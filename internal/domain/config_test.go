package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 0, s.Rounding.IntervalMin)
	assert.Equal(t, RoundUp, s.Rounding.InDirection)
	assert.Equal(t, RoundDown, s.Rounding.OutDirection)
	assert.Equal(t, 0, s.Cutoff.Hour)
	assert.Equal(t, 0, s.Cutoff.Minute)
}

func TestRoundingConfig_Direction(t *testing.T) {
	c := RoundingConfig{InDirection: RoundUp, OutDirection: RoundDown}
	assert.Equal(t, RoundUp, c.Direction(StampIn))
	assert.Equal(t, RoundDown, c.Direction(StampOut))
}

func TestSettings_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "valid settings untouched",
			in: Settings{
				Rounding: RoundingConfig{IntervalMin: 15, InDirection: RoundDown, OutDirection: RoundUp},
				Cutoff:   CutoffConfig{Hour: 5, Minute: 30},
			},
			want: Settings{
				Rounding: RoundingConfig{IntervalMin: 15, InDirection: RoundDown, OutDirection: RoundUp},
				Cutoff:   CutoffConfig{Hour: 5, Minute: 30},
			},
		},
		{
			name: "unknown interval turns rounding off",
			in:   Settings{Rounding: RoundingConfig{IntervalMin: 10, InDirection: RoundUp, OutDirection: RoundDown}},
			want: Settings{Rounding: RoundingConfig{IntervalMin: 0, InDirection: RoundUp, OutDirection: RoundDown}},
		},
		{
			name: "garbage directions fall back to defaults",
			in: Settings{Rounding: RoundingConfig{
				IntervalMin:  30,
				InDirection:  RoundingDirection("sideways"),
				OutDirection: RoundingDirection(""),
			}},
			want: Settings{Rounding: RoundingConfig{IntervalMin: 30, InDirection: RoundUp, OutDirection: RoundDown}},
		},
		{
			name: "cutoff clamped into range",
			in: Settings{
				Rounding: RoundingConfig{InDirection: RoundUp, OutDirection: RoundDown},
				Cutoff:   CutoffConfig{Hour: 23, Minute: 75},
			},
			want: Settings{
				Rounding: RoundingConfig{InDirection: RoundUp, OutDirection: RoundDown},
				Cutoff:   CutoffConfig{Hour: 11, Minute: 59},
			},
		},
		{
			name: "negative cutoff clamped to zero",
			in: Settings{
				Rounding: RoundingConfig{InDirection: RoundUp, OutDirection: RoundDown},
				Cutoff:   CutoffConfig{Hour: -1, Minute: -5},
			},
			want: Settings{
				Rounding: RoundingConfig{InDirection: RoundUp, OutDirection: RoundDown},
				Cutoff:   CutoffConfig{Hour: 0, Minute: 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}
