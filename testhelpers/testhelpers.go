// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// ServicePrices sets the price columns of a test catalog entry.
type ServicePrices struct {
	Remote      float64
	Onsite      float64
	Fixed       float64
	BaseProject float64
}

// CreateTestService creates an active catalog entry and returns it.
func CreateTestService(t *testing.T, app *pocketbase.PocketBase, name, category, billingMode string, prices ServicePrices) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Services)
	if err != nil {
		t.Fatalf("failed to find services collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("billing_mode", billingMode)
	record.Set("remote_price", prices.Remote)
	record.Set("onsite_price", prices.Onsite)
	record.Set("fixed_price", prices.Fixed)
	record.Set("base_project_price", prices.BaseProject)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service: %v", err)
	}

	return record
}

// DeactivateTestService flips a catalog entry to inactive.
func DeactivateTestService(t *testing.T, app *pocketbase.PocketBase, record *core.Record) {
	t.Helper()
	record.Set("active", false)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to deactivate test service: %v", err)
	}
}

// CreateTestConfiguration stores a pricing profile with the given knobs.
func CreateTestConfiguration(t *testing.T, app *pocketbase.PocketBase, urgencyPct, fixedTravel, perKm, onCallRate, taxPct float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Configuration)
	if err != nil {
		t.Fatalf("failed to find configuration collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("urgency_percent", urgencyPct)
	record.Set("fixed_travel_fee", fixedTravel)
	record.Set("per_km_travel_fee", perKm)
	record.Set("on_call_hourly_rate", onCallRate)
	record.Set("tax_percent", taxPct)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test configuration: %v", err)
	}

	return record
}

// CreateTestCompany stores the company profile.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Company)
	if err != nil {
		t.Fatalf("failed to find company collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("tax_id", "12.345.678/0001-90")
	record.Set("address", "Av. Paulista, 1000 - Sao Paulo")
	record.Set("phone", "+55 11 4000-0000")
	record.Set("email", "contact@example.com")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestProposal stores a proposal with a single line and a fixed,
// precomputed breakdown. The breakdown is not derived from the line.
func CreateTestProposal(t *testing.T, app *pocketbase.PocketBase, number, clientName, status string, grandTotal float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Proposals)
	if err != nil {
		t.Fatalf("failed to find proposals collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", number)
	record.Set("client_name", clientName)
	record.Set("client_name_search", collections.ClientSearchKey(clientName))
	record.Set("status", status)
	record.Set("discount_kind", "fixed")
	record.Set("items", []map[string]any{{
		"serviceId":       "svc_fixture",
		"serviceName":     "Fixture Service",
		"serviceCategory": "Fixtures",
		"attendanceMode":  "remote",
		"quantity":        1,
		"unitPrice":       grandTotal,
		"subtotal":        grandTotal,
		"urgencyApplied":  false,
		"urgencyAmount":   0,
	}})
	record.Set("service_subtotal", grandTotal)
	record.Set("pre_discount_subtotal", grandTotal)
	record.Set("post_discount_subtotal", grandTotal)
	record.Set("grand_total", grandTotal)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test proposal: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
