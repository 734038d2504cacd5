package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kintai-dev/kintai/internal/faceid"
)

// JSONVectorExtractor adapts pre-extracted feature files to the extractor
// seam: each frame is a JSON array of numbers written by the external
// detector. An empty array means the detector found no face in that frame.
type JSONVectorExtractor struct{}

func (JSONVectorExtractor) Extract(_ context.Context, frame []byte) ([]float32, error) {
	var vector []float32
	if err := json.Unmarshal(frame, &vector); err != nil {
		return nil, fmt.Errorf("parsing feature vector: %w", err)
	}
	if len(vector) == 0 {
		return nil, faceid.ErrNoFace
	}
	return vector, nil
}

// extractVectorFile reads one frame file and runs it through the extractor.
func extractVectorFile(ctx context.Context, ex faceid.Extractor, path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector file: %w", err)
	}
	vector, err := ex.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("vector file %s: %w", path, err)
	}
	return vector, nil
}
