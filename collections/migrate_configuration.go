package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"quotedesk/logging"
)

// MigrateDuplicateConfiguration keeps only the oldest configuration profile.
// Concurrent first reads can each lazily create a profile.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateDuplicateConfiguration(app *pocketbase.PocketBase) error {
	var ids []struct {
		ID string `db:"id"`
	}
	err := app.RecordQuery(Configuration).
		Select("id").
		OrderBy("created ASC", "id ASC").
		All(&ids)
	if err != nil {
		return fmt.Errorf("migrate_configuration: could not query profiles: %w", err)
	}

	if len(ids) <= 1 {
		return nil
	}

	logging.Info("migrate_configuration: removing duplicate profiles",
		zap.Int("duplicates", len(ids)-1),
		zap.String("kept", ids[0].ID))

	for _, row := range ids[1:] {
		record, err := app.FindRecordById(Configuration, row.ID)
		if err != nil {
			logging.Warn("migrate_configuration: profile vanished", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		if err := app.Delete(record); err != nil {
			return fmt.Errorf("migrate_configuration: delete %s: %w", row.ID, err)
		}
	}

	remaining, err := app.CountRecords(Configuration)
	if err != nil {
		return fmt.Errorf("migrate_configuration: count profiles: %w", err)
	}
	logging.Info("migrate_configuration: done", zap.Int64("remaining", remaining))
	return nil
}
