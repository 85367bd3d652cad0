package services

import (
	"database/sql"
	"errors"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/apperr"
)

// findRecord loads a record by id, reporting a missing record as a
// NOT_FOUND application error named after kind.
func findRecord(app *pocketbase.PocketBase, collection, kind, id string) (*core.Record, error) {
	record, err := app.FindRecordById(collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(kind, id)
		}
		return nil, apperr.Internal("could not load "+kind, err)
	}
	return record, nil
}

// findSingleton returns the oldest record of a singleton collection, or nil
// when the collection is empty.
func findSingleton(app *pocketbase.PocketBase, collection string) (*core.Record, error) {
	records, err := app.FindRecordsByFilter(collection, "1=1", "created,id", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func newRecord(app *pocketbase.PocketBase, collection string) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return nil, apperr.Internal("could not find "+collection+" collection", err)
	}
	return core.NewRecord(col), nil
}
