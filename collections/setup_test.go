package collections_test

import (
	"testing"

	"quotedesk/collections"
	"quotedesk/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"services",
	"company",
	"configuration",
	"proposals",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_ServicesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("services")

	fields := []string{"name", "category", "billing_mode", "remote_price", "onsite_price",
		"fixed_price", "base_project_price", "active", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("services: missing field %q", f)
		}
	}

	billingField := col.Fields.GetByName("billing_mode")
	if sf, ok := billingField.(*core.SelectField); ok {
		expected := map[string]bool{"remote": true, "onsite": true, "fixed": true, "project": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected billing_mode value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing billing_mode value: %q", v)
		}
	} else {
		t.Errorf("billing_mode field is not a SelectField")
	}
}

func TestSetup_ConfigurationFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("configuration")

	fields := []string{"urgency_percent", "fixed_travel_fee", "per_km_travel_fee",
		"on_call_hourly_rate", "tax_percent", "created", "updated"}
	for _, f := range fields {
		if _, ok := col.Fields.GetByName(f).(*core.NumberField); !ok && f != "created" && f != "updated" {
			t.Errorf("configuration: %q is not a number field", f)
		}
		if col.Fields.GetByName(f) == nil {
			t.Errorf("configuration: missing field %q", f)
		}
	}
}

func TestSetup_CompanyFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("company")

	for _, f := range []string{"name", "tax_id", "address", "phone", "email", "logo_url"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("company: missing field %q", f)
		}
	}
}

func TestSetup_ProposalsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("proposals")

	fields := []string{
		"number", "client_name", "client_name_search", "client_email", "client_phone", "client_address",
		"items", "travel_km", "on_call_hours", "global_urgency", "discount_kind",
		"discount_amount", "notes", "status", "urgency_percent", "tax_percent",
		"service_subtotal", "total_urgency_amount", "travel_fee", "on_call_fee",
		"additions_subtotal", "pre_discount_subtotal", "discount_applied",
		"post_discount_subtotal", "tax_amount", "grand_total", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("proposals: missing field %q", f)
		}
	}

	if _, ok := col.Fields.GetByName("items").(*core.JSONField); !ok {
		t.Error("proposals.items: expected JSONField")
	}
	if _, ok := col.Fields.GetByName("discount_kind").(*core.TextField); !ok {
		t.Error("proposals.discount_kind: expected free-text field")
	}

	for _, f := range col.Fields {
		if tf, ok := f.(*core.TextField); ok && !tf.System && tf.Max != collections.TextColumnMax {
			t.Errorf("proposals.%s: max = %d, want %d", tf.Name, tf.Max, collections.TextColumnMax)
		}
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		if len(sf.Values) != 4 {
			t.Errorf("proposals.status: expected 4 values, got %d", len(sf.Values))
		}
	} else {
		t.Errorf("status field is not a SelectField")
	}
}
