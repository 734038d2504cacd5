package faceid

import (
	"context"
	"errors"
)

// ErrNoFace is returned by an Extractor when the frame contains no usable
// face. The polling loop treats it as "keep sampling", not a failure.
var ErrNoFace = errors.New("no face found in frame")

// Extractor turns raw frame data into a fixed-length feature vector. The
// real implementation wraps an external detector/embedder; it is passed in
// as an explicit dependency so tests can substitute a double.
type Extractor interface {
	Extract(ctx context.Context, frame []byte) ([]float32, error)
}
