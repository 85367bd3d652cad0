package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/logging"
)

// MigrateSchema brings collections created by older builds up to date:
// text columns get the TextColumnMax limit, and proposals gain the
// client_name_search and rate columns, which are backfilled from the
// stored data. Safe to call on every startup.
func MigrateSchema(app *pocketbase.PocketBase) error {
	for _, name := range []string{Services, Company, Proposals} {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			return fmt.Errorf("migrate_schema: find %s: %w", name, err)
		}
		if !raiseTextLimits(col) {
			continue
		}
		if err := app.Save(col); err != nil {
			return fmt.Errorf("migrate_schema: save %s: %w", name, err)
		}
		logging.Info("migrate_schema: raised text limits", zap.String("collection", name))
	}

	col, err := app.FindCollectionByNameOrId(Proposals)
	if err != nil {
		return fmt.Errorf("migrate_schema: find proposals: %w", err)
	}

	needSearch := col.Fields.GetByName("client_name_search") == nil
	needRates := false
	if needSearch {
		col.Fields.Add(textField("client_name_search", false))
	}
	for _, name := range rateFields {
		if col.Fields.GetByName(name) == nil {
			col.Fields.Add(&core.NumberField{Name: name})
			needRates = true
		}
	}
	if !needSearch && !needRates {
		return nil
	}
	if err := app.Save(col); err != nil {
		return fmt.Errorf("migrate_schema: add proposal fields: %w", err)
	}

	records, err := app.FindAllRecords(Proposals)
	if err != nil {
		return fmt.Errorf("migrate_schema: list proposals: %w", err)
	}
	for _, record := range records {
		if needSearch {
			record.Set("client_name_search", ClientSearchKey(record.GetString("client_name")))
		}
		if needRates {
			urgency, tax := storedRates(record)
			record.Set("urgency_percent", urgency)
			record.Set("tax_percent", tax)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("migrate_schema: backfill %s: %w", record.Id, err)
		}
	}

	logging.Info("migrate_schema: backfilled proposals",
		zap.Int("proposals", len(records)),
		zap.Bool("search", needSearch),
		zap.Bool("rates", needRates))
	return nil
}

func raiseTextLimits(col *core.Collection) bool {
	changed := false
	for _, f := range col.Fields {
		switch field := f.(type) {
		case *core.TextField:
			if !field.System && field.Max < TextColumnMax {
				field.Max = TextColumnMax
				changed = true
			}
		case *core.JSONField:
			if field.MaxSize < ItemsMaxSize {
				field.MaxSize = ItemsMaxSize
				changed = true
			}
		}
	}
	return changed
}

// storedRates recovers the percentages a proposal was priced with from its
// stored amounts. A rate with no amount to derive it from is 0.
func storedRates(record *core.Record) (urgency, tax float64) {
	if post := record.GetFloat("post_discount_subtotal"); post != 0 {
		tax = record.GetFloat("tax_amount") / post * 100
	}

	var lines []struct {
		Subtotal      float64 `json:"subtotal"`
		UrgencyAmount float64 `json:"urgencyAmount"`
	}
	if err := record.UnmarshalJSONField("items", &lines); err != nil {
		return urgency, tax
	}
	var base, amount float64
	for _, l := range lines {
		if l.UrgencyAmount != 0 {
			base += l.Subtotal
			amount += l.UrgencyAmount
		}
	}
	if base != 0 {
		urgency = amount / base * 100
	}
	return urgency, tax
}
