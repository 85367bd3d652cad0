package services

import (
	"strings"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"quotedesk/apperr"
	"quotedesk/collections"
	"quotedesk/logging"
)

// ServiceFilter narrows ListServices. Nil/empty fields do not filter.
type ServiceFilter struct {
	Active   *bool
	Category string
}

// Category is an active catalog category with its number of active entries.
type Category struct {
	Name         string `db:"name" json:"name"`
	ServiceCount int    `db:"service_count" json:"serviceCount"`
}

// ListServices returns catalog entries sorted by name.
func ListServices(app *pocketbase.PocketBase, f ServiceFilter) ([]CatalogEntry, error) {
	var clauses []string
	params := dbx.Params{}
	if f.Active != nil {
		clauses = append(clauses, "active = {:active}")
		params["active"] = *f.Active
	}
	if f.Category != "" {
		clauses = append(clauses, "category = {:category}")
		params["category"] = f.Category
	}
	filter := "1=1"
	if len(clauses) > 0 {
		filter = strings.Join(clauses, " && ")
	}

	records, err := app.FindRecordsByFilter(collections.Services, filter, "name", 0, 0, params)
	if err != nil {
		return nil, apperr.Internal("could not list services", err)
	}

	entries := make([]CatalogEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, CatalogEntryFromRecord(r))
	}
	return entries, nil
}

// GetService returns one catalog entry.
func GetService(app *pocketbase.PocketBase, id string) (CatalogEntry, error) {
	record, err := findRecord(app, collections.Services, "service", id)
	if err != nil {
		return CatalogEntry{}, err
	}
	return CatalogEntryFromRecord(record), nil
}

// CreateService stores a new catalog entry. Entries are active unless the
// input says otherwise.
func CreateService(app *pocketbase.PocketBase, in ServiceInput) (CatalogEntry, error) {
	record, err := newRecord(app, collections.Services)
	if err != nil {
		return CatalogEntry{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	record.Set("name", in.Name)
	record.Set("category", in.Category)
	record.Set("billing_mode", in.BillingMode)
	record.Set("remote_price", in.RemotePrice)
	record.Set("onsite_price", in.OnsitePrice)
	record.Set("fixed_price", in.FixedPrice)
	record.Set("base_project_price", in.BaseProjectPrice)
	record.Set("active", active)

	if err := app.Save(record); err != nil {
		return CatalogEntry{}, apperr.Internal("could not save service", err)
	}
	logging.Info("catalog: service created", zap.String("id", record.Id), zap.String("name", in.Name))
	return CatalogEntryFromRecord(record), nil
}

// UpdateService applies the non-nil fields of p.
func UpdateService(app *pocketbase.PocketBase, id string, p ServicePatch) (CatalogEntry, error) {
	record, err := findRecord(app, collections.Services, "service", id)
	if err != nil {
		return CatalogEntry{}, err
	}

	setIf(record.Set, "name", p.Name)
	setIf(record.Set, "category", p.Category)
	setIf(record.Set, "billing_mode", p.BillingMode)
	setIf(record.Set, "remote_price", p.RemotePrice)
	setIf(record.Set, "onsite_price", p.OnsitePrice)
	setIf(record.Set, "fixed_price", p.FixedPrice)
	setIf(record.Set, "base_project_price", p.BaseProjectPrice)
	setIf(record.Set, "active", p.Active)

	if err := app.Save(record); err != nil {
		return CatalogEntry{}, apperr.Internal("could not save service", err)
	}
	return CatalogEntryFromRecord(record), nil
}

// DeactivateService flips the active flag off. Entries are never removed
// because stored proposals keep referring to them.
func DeactivateService(app *pocketbase.PocketBase, id string) error {
	record, err := findRecord(app, collections.Services, "service", id)
	if err != nil {
		return err
	}
	record.Set("active", false)
	if err := app.Save(record); err != nil {
		return apperr.Internal("could not deactivate service", err)
	}
	logging.Info("catalog: service deactivated", zap.String("id", id))
	return nil
}

// ListCategories groups active catalog entries by category, alphabetically.
func ListCategories(app *pocketbase.PocketBase) ([]Category, error) {
	categories := []Category{}
	err := app.DB().
		Select("category AS name", "COUNT(*) AS service_count").
		From(collections.Services).
		Where(dbx.HashExp{"active": true}).
		GroupBy("category").
		OrderBy("category ASC").
		All(&categories)
	if err != nil {
		return nil, apperr.Internal("could not list categories", err)
	}
	return categories, nil
}

// setIf calls set(key, *v) when v is not nil.
func setIf[T any](set func(string, any), key string, v *T) {
	if v != nil {
		set(key, *v)
	}
}
