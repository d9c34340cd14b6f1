package arena

import (
	"context"

	"github.com/kinoline/kinoline/internal/model"
)

// StatsUpdater records faceoff outcomes against the catalog
type StatsUpdater interface {
	RecordOutcome(ctx context.Context, id int64, outcome model.Outcome) error
}

// Source yields values in [0, 1) used to settle close faceoffs
type Source interface {
	Draw(ctx context.Context) (float64, error)
}

// Recorder persists resolved faceoff events
type Recorder interface {
	RecordFaceoff(ctx context.Context, event model.FaceoffEvent) error
}
