package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"quotedesk/logging"
)

// Collection names.
const (
	Services      = "services"
	Company       = "company"
	Configuration = "configuration"
	Proposals     = "proposals"
)

// Billing modes of a catalog entry.
const (
	BillingRemote  = "remote"
	BillingOnsite  = "onsite"
	BillingFixed   = "fixed"
	BillingProject = "project"
)

// Proposal statuses.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// BillingModes and ProposalStatuses are the values accepted by the select
// fields below. Request validation uses the same slices.
var (
	BillingModes     = []string{BillingRemote, BillingOnsite, BillingFixed, BillingProject}
	ProposalStatuses = []string{StatusDraft, StatusSent, StatusApproved, StatusRejected}
)

// MaxTextLength caps free-text request fields. Stored text columns allow
// TextColumnMax so that the duplicate prefix still fits after a copy.
const (
	MaxTextLength = 20000
	TextColumnMax = 1000000

	// ItemsMaxSize is the byte limit of the proposals.items JSON column.
	ItemsMaxSize = 16 << 20
)

// Setup programmatically creates/ensures the services, company,
// configuration and proposals collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, Services, func(c *core.Collection) {
		c.Fields.Add(textField("name", true))
		c.Fields.Add(textField("category", true))
		c.Fields.Add(&core.SelectField{
			Name:      "billing_mode",
			Required:  true,
			Values:    BillingModes,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "remote_price"})
		c.Fields.Add(&core.NumberField{Name: "onsite_price"})
		c.Fields.Add(&core.NumberField{Name: "fixed_price"})
		c.Fields.Add(&core.NumberField{Name: "base_project_price"})
		c.Fields.Add(&core.BoolField{Name: "active"})
		addTimestamps(c)
		c.AddIndex("idx_services_category", false, "category", "")
	})

	ensureCollection(app, Company, func(c *core.Collection) {
		c.Fields.Add(textField("name", true))
		c.Fields.Add(textField("tax_id", false))
		c.Fields.Add(textField("address", false))
		c.Fields.Add(textField("phone", false))
		c.Fields.Add(textField("email", false))
		c.Fields.Add(textField("logo_url", false))
		addTimestamps(c)
	})

	ensureCollection(app, Configuration, func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "urgency_percent"})
		c.Fields.Add(&core.NumberField{Name: "fixed_travel_fee"})
		c.Fields.Add(&core.NumberField{Name: "per_km_travel_fee"})
		c.Fields.Add(&core.NumberField{Name: "on_call_hourly_rate"})
		c.Fields.Add(&core.NumberField{Name: "tax_percent"})
		addTimestamps(c)
	})

	ensureCollection(app, Proposals, func(c *core.Collection) {
		c.Fields.Add(textField("number", true))
		c.Fields.Add(textField("client_name", true))
		c.Fields.Add(textField("client_name_search", false))
		c.Fields.Add(textField("client_email", false))
		c.Fields.Add(textField("client_phone", false))
		c.Fields.Add(textField("client_address", false))
		c.Fields.Add(&core.JSONField{Name: "items", MaxSize: ItemsMaxSize})
		c.Fields.Add(&core.NumberField{Name: "travel_km"})
		c.Fields.Add(&core.NumberField{Name: "on_call_hours"})
		c.Fields.Add(&core.BoolField{Name: "global_urgency"})
		// Free text: unknown kinds are stored as given and priced as fixed.
		c.Fields.Add(textField("discount_kind", false))
		c.Fields.Add(&core.NumberField{Name: "discount_amount"})
		c.Fields.Add(textField("notes", false))
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    ProposalStatuses,
			MaxSelect: 1,
		})
		for _, name := range rateFields {
			c.Fields.Add(&core.NumberField{Name: name})
		}
		for _, name := range breakdownFields {
			c.Fields.Add(&core.NumberField{Name: name})
		}
		addTimestamps(c)
		c.AddIndex("idx_proposals_status", false, "status", "")
	})
}

// rateFields are the configuration percentages a proposal was last priced
// with.
var rateFields = []string{"urgency_percent", "tax_percent"}

func textField(name string, required bool) *core.TextField {
	return &core.TextField{Name: name, Required: required, Max: TextColumnMax}
}

// ClientSearchKey folds a client name (or a search term) for
// case-insensitive matching on client_name_search.
func ClientSearchKey(name string) string {
	return cases.Fold().String(name)
}

// breakdownFields are the computed money columns stored on every proposal.
var breakdownFields = []string{
	"service_subtotal",
	"total_urgency_amount",
	"travel_fee",
	"on_call_fee",
	"additions_subtotal",
	"pre_discount_subtotal",
	"discount_applied",
	"post_discount_subtotal",
	"tax_amount",
	"grand_total",
}

func addTimestamps(c *core.Collection) {
	c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logging.Debug("setup: collection already exists", zap.String("collection", name))
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		logging.Fatal("setup: failed to create collection", zap.String("collection", name), zap.Error(err))
	}

	logging.Info("setup: created collection", zap.String("collection", name), zap.String("id", collection.Id))
	return collection
}
