package migration

import (
	"context"
	"fmt"

	"go-micro.dev/v4/logger"
)

type migratorFn func() error

// v1 introduces the unique compound key index on catalog items and the
// soft-delete flag
func (m *Migrator) migrateDatabaseV0ToV1() error {
	ctx := context.Background()

	if err := m.Database.CreateItemIndexes(ctx); err != nil {
		return fmt.Errorf("create item indexes failed: %w", err)
	}

	backfilled, err := m.Database.BackfillDeletedFlag(ctx)
	if err != nil {
		return fmt.Errorf("backfill deleted flag failed: %w", err)
	}
	if backfilled > 0 {
		logger.Infof("Marked %d legacy items as live", backfilled)
	}

	return nil
}
