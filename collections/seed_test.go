package collections_test

import (
	"testing"

	"quotedesk/collections"
	"quotedesk/testhelpers"
)

func TestSeed_CreatesCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	services, err := app.FindAllRecords("services")
	if err != nil {
		t.Fatalf("query services error: %v", err)
	}
	if len(services) != 8 {
		t.Fatalf("expected 8 services, got %d", len(services))
	}

	// Every billing mode is represented and every entry is active.
	modes := map[string]bool{}
	for _, s := range services {
		modes[s.GetString("billing_mode")] = true
		if !s.GetBool("active") {
			t.Errorf("seeded service %q is not active", s.GetString("name"))
		}
	}
	for _, m := range collections.BillingModes {
		if !modes[m] {
			t.Errorf("no seeded service with billing mode %q", m)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	count, err := app.CountRecords("services")
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 8 {
		t.Errorf("expected 8 services after two seeds, got %d", count)
	}
}

func TestSeed_SkipsExistingCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Own Service", "Custom", "fixed", testhelpers.ServicePrices{Fixed: 10})

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	count, _ := app.CountRecords("services")
	if count != 1 {
		t.Errorf("expected seed to leave an existing catalog alone, got %d services", count)
	}
}
