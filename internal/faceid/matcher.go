// Package faceid selects the best-matching enrolled identity for a live
// feature vector. Vector extraction from images is an external concern; this
// package only compares vectors that were already extracted.
package faceid

import (
	"math"

	"github.com/kintai-dev/kintai/internal/domain"
)

// MatchThreshold is the minimum cosine similarity a candidate must strictly
// exceed to be accepted. 0.65 keeps 1:N false accepts rare with the upstream
// extractor's embeddings.
const MatchThreshold = 0.65

// Match is a successful identification.
type Match struct {
	Employee *domain.Employee
	Score    float32
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|) with float32 accumulation.
// Vectors of unequal length never compare equal and score 0, as does any
// zero-magnitude vector.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float32
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (float32(math.Sqrt(float64(magA))) * float32(math.Sqrt(float64(magB))))
}

// Identify scores the live vector against every enrolled employee and
// returns the best match, or nil when no score strictly exceeds
// MatchThreshold. A no-match is a normal negative result, not an error.
//
// Ties at the maximum resolve to the first gallery entry seen: the running
// best is only replaced on a strictly greater score. With the repository's
// employee-code ordering this is deterministic per gallery, but it is an
// iteration-order tie-break, not a principled one.
//
// Pure over its arguments; safe to call repeatedly and concurrently from a
// polling loop. Single accept-and-stop semantics across overlapping polls
// belong to the caller (see Session).
func Identify(live []float32, gallery []*domain.Employee) *Match {
	var best *domain.Employee
	var bestScore float32
	for _, emp := range gallery {
		if !emp.Enrolled() {
			continue
		}
		score := CosineSimilarity(live, DecodeVector(emp.FaceFeature))
		if score > bestScore {
			bestScore = score
			best = emp
		}
	}
	if best == nil || bestScore <= MatchThreshold {
		return nil
	}
	return &Match{Employee: best, Score: bestScore}
}
