package collections_test

import (
	"testing"
	"time"

	"quotedesk/collections"
	"quotedesk/testhelpers"
)

func TestMigrateDuplicateConfiguration_KeepsOldest(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	oldest := testhelpers.CreateTestConfiguration(t, app, 10, 0, 2, 50, 5)
	time.Sleep(5 * time.Millisecond)
	testhelpers.CreateTestConfiguration(t, app, 0, 0, 0, 0, 0)
	time.Sleep(5 * time.Millisecond)
	testhelpers.CreateTestConfiguration(t, app, 1, 1, 1, 1, 1)

	if err := collections.MigrateDuplicateConfiguration(app); err != nil {
		t.Fatalf("MigrateDuplicateConfiguration() error: %v", err)
	}

	all, err := app.FindAllRecords("configuration")
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 configuration, got %d", len(all))
	}
	if all[0].Id != oldest.Id {
		t.Errorf("kept %s, want oldest %s", all[0].Id, oldest.Id)
	}
}

func TestMigrateDuplicateConfiguration_NoopWhenSingleOrEmpty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.MigrateDuplicateConfiguration(app); err != nil {
		t.Fatalf("empty run error: %v", err)
	}

	testhelpers.CreateTestConfiguration(t, app, 10, 0, 0, 0, 0)
	if err := collections.MigrateDuplicateConfiguration(app); err != nil {
		t.Fatalf("single run error: %v", err)
	}

	count, _ := app.CountRecords("configuration")
	if count != 1 {
		t.Errorf("expected 1 configuration, got %d", count)
	}
}
