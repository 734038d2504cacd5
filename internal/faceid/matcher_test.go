package faceid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-dev/kintai/internal/domain"
)

func enrolled(code string, vec []float32) *domain.Employee {
	return &domain.Employee{Code: code, FaceFeature: EncodeVector(vec)}
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{5, 0}), 1e-6, "scale invariant")
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6, "orthogonal")
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6, "opposite")
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	assert.Zero(t, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}), "length mismatch")
	assert.Zero(t, CosineSimilarity(nil, nil), "empty")
	assert.Zero(t, CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3}), "zero magnitude")
}

func TestIdentify_PicksBestAboveThreshold(t *testing.T) {
	live := []float32{1, 0, 0}
	gallery := []*domain.Employee{
		enrolled("EMP001", []float32{0.7, 0.7, 0}),
		enrolled("EMP002", []float32{1, 0.1, 0}),
		enrolled("EMP003", []float32{0, 1, 0}),
	}

	m := Identify(live, gallery)
	require.NotNil(t, m)
	assert.Equal(t, "EMP002", m.Employee.Code)
	assert.Greater(t, m.Score, float32(MatchThreshold))
}

func TestIdentify_BelowThresholdIsNoMatch(t *testing.T) {
	// Best similarity is 0.5, short of the 0.65 bar.
	live := []float32{1, 0}
	gallery := []*domain.Employee{
		enrolled("EMP001", []float32{1, float32(1.7320508)}),
	}
	assert.Nil(t, Identify(live, gallery))
}

func TestIdentify_TieResolvesToFirstSeen(t *testing.T) {
	vec := []float32{0.5, 0.5, 0.5}
	gallery := []*domain.Employee{
		enrolled("EMP001", vec),
		enrolled("EMP002", vec),
	}

	m := Identify(vec, gallery)
	require.NotNil(t, m)
	assert.Equal(t, "EMP001", m.Employee.Code)
	assert.InDelta(t, 1.0, float64(m.Score), 1e-6)
}

func TestIdentify_SkipsUnenrolled(t *testing.T) {
	live := []float32{1, 0}
	gallery := []*domain.Employee{
		{Code: "EMP001"}, // no feature vector
		enrolled("EMP002", []float32{1, 0}),
	}

	m := Identify(live, gallery)
	require.NotNil(t, m)
	assert.Equal(t, "EMP002", m.Employee.Code)
}

func TestIdentify_EmptyGallery(t *testing.T) {
	assert.Nil(t, Identify([]float32{1, 0}, nil))
}

func TestVectorCodec_RoundTrip(t *testing.T) {
	vec := []float32{0.25, -1.5, 0, 3.75, 1e-7}
	got := DecodeVector(EncodeVector(vec))
	assert.Equal(t, vec, got)
}

func TestDecodeVector_TruncatedBlob(t *testing.T) {
	blob := EncodeVector([]float32{1, 2, 3})
	got := DecodeVector(blob[:len(blob)-2])
	assert.Equal(t, []float32{1, 2}, got, "trailing partial float is dropped")
}

func TestEncodeVector_Empty(t *testing.T) {
	assert.Nil(t, EncodeVector(nil))
	assert.Nil(t, DecodeVector(nil))
}
