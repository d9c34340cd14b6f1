package playlist

import "context"

// StatsUpdater records a playback event against the catalog. Failures are
// propagated to the caller as-is, the playlist never retries.
type StatsUpdater interface {
	RecordWatch(ctx context.Context, id int64) error
}
