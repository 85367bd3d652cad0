package collections_test

import (
	"math"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/collections"
	"quotedesk/testhelpers"
)

// downgradeProposals strips the columns added after the first release and
// restores PocketBase's default text limit, as an older database would have.
func downgradeProposals(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Proposals)
	if err != nil {
		t.Fatalf("find proposals: %v", err)
	}
	for _, name := range []string{"client_name_search", "urgency_percent", "tax_percent"} {
		col.Fields.RemoveByName(name)
	}
	col.Fields.GetByName("notes").(*core.TextField).Max = 0
	if err := app.Save(col); err != nil {
		t.Fatalf("save downgraded proposals: %v", err)
	}
}

func TestMigrateSchema_BackfillsProposals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	downgradeProposals(t, app)

	col, _ := app.FindCollectionByNameOrId(collections.Proposals)
	record := core.NewRecord(col)
	record.Set("number", "PROP-1")
	record.Set("client_name", "JOÃO Ávila")
	record.Set("status", collections.StatusSent)
	record.Set("items", []map[string]any{
		{"serviceId": "a", "subtotal": 200, "urgencyAmount": 20, "urgencyApplied": true},
		{"serviceId": "b", "subtotal": 50, "urgencyAmount": 0},
	})
	record.Set("post_discount_subtotal", 100)
	record.Set("tax_amount", 5)
	if err := app.Save(record); err != nil {
		t.Fatalf("save legacy proposal: %v", err)
	}

	if err := collections.MigrateSchema(app); err != nil {
		t.Fatalf("MigrateSchema() error: %v", err)
	}

	col, _ = app.FindCollectionByNameOrId(collections.Proposals)
	for _, name := range []string{"client_name_search", "urgency_percent", "tax_percent"} {
		if col.Fields.GetByName(name) == nil {
			t.Errorf("proposals: missing field %q after migration", name)
		}
	}
	if got := col.Fields.GetByName("notes").(*core.TextField).Max; got != collections.TextColumnMax {
		t.Errorf("notes max = %d, want %d", got, collections.TextColumnMax)
	}

	got, err := app.FindRecordById(collections.Proposals, record.Id)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s := got.GetString("client_name_search"); s != "joão ávila" {
		t.Errorf("client_name_search = %q, want %q", s, "joão ávila")
	}
	if v := got.GetFloat("tax_percent"); math.Abs(v-5) > 0.001 {
		t.Errorf("tax_percent = %v, want 5", v)
	}
	if v := got.GetFloat("urgency_percent"); math.Abs(v-10) > 0.001 {
		t.Errorf("urgency_percent = %v, want 10", v)
	}
}

func TestMigrateSchema_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProposal(t, app, "PROP-1", "Acme", collections.StatusDraft, 10)

	for i := 0; i < 2; i++ {
		if err := collections.MigrateSchema(app); err != nil {
			t.Fatalf("MigrateSchema() run %d error: %v", i+1, err)
		}
	}
}

func TestSetup_SelectValuesMatchEnums(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	services, _ := app.FindCollectionByNameOrId(collections.Services)
	billing := services.Fields.GetByName("billing_mode").(*core.SelectField)
	if !equalStrings(billing.Values, collections.BillingModes) {
		t.Errorf("billing_mode values = %v, want %v", billing.Values, collections.BillingModes)
	}

	proposals, _ := app.FindCollectionByNameOrId(collections.Proposals)
	status := proposals.Fields.GetByName("status").(*core.SelectField)
	if !equalStrings(status.Values, collections.ProposalStatuses) {
		t.Errorf("status values = %v, want %v", status.Values, collections.ProposalStatuses)
	}
}

func TestClientSearchKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Acme", "acme"},
		{"JOÃO", "joão"},
		{"ÁVILA", "ávila"},
		{"100% Digital", "100% digital"},
	}
	for _, tt := range tests {
		if got := collections.ClientSearchKey(tt.in); got != tt.want {
			t.Errorf("ClientSearchKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
