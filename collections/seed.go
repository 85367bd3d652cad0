package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/logging"
)

type serviceDef struct {
	name             string
	category         string
	billingMode      string
	remotePrice      float64
	onsitePrice      float64
	fixedPrice       float64
	baseProjectPrice float64
}

// sampleCatalog is a small IT-services catalog covering every billing mode.
var sampleCatalog = []serviceDef{
	{name: "Remote Support (hour)", category: "Support", billingMode: BillingRemote, remotePrice: 90},
	{name: "Remote Server Maintenance", category: "Support", billingMode: BillingRemote, remotePrice: 150},
	{name: "Onsite Technical Visit (hour)", category: "Support", billingMode: BillingOnsite, onsitePrice: 140},
	{name: "Network Cabling Point", category: "Infrastructure", billingMode: BillingOnsite, onsitePrice: 180},
	{name: "Firewall Setup", category: "Infrastructure", billingMode: BillingFixed, fixedPrice: 850},
	{name: "Backup Policy Review", category: "Security", billingMode: BillingFixed, fixedPrice: 600},
	{name: "Office Network Rollout", category: "Projects", billingMode: BillingProject, baseProjectPrice: 7500},
	{name: "Cloud Migration", category: "Projects", billingMode: BillingProject, baseProjectPrice: 12000},
}

// Seed inserts a sample service catalog. It is safe to call on every
// startup because it returns early if any service records already exist.
func Seed(app *pocketbase.PocketBase) error {
	servicesCol, err := app.FindCollectionByNameOrId(Services)
	if err != nil {
		return fmt.Errorf("seed: could not find services collection: %w", err)
	}
	existing, err := app.CountRecords(servicesCol)
	if err != nil {
		return fmt.Errorf("seed: could not count services: %w", err)
	}
	if existing > 0 {
		return nil // already seeded
	}

	logging.Info("seed: services collection is empty, inserting sample catalog")

	for _, d := range sampleCatalog {
		record := core.NewRecord(servicesCol)
		record.Set("name", d.name)
		record.Set("category", d.category)
		record.Set("billing_mode", d.billingMode)
		record.Set("remote_price", d.remotePrice)
		record.Set("onsite_price", d.onsitePrice)
		record.Set("fixed_price", d.fixedPrice)
		record.Set("base_project_price", d.baseProjectPrice)
		record.Set("active", true)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: save service %q: %w", d.name, err)
		}
	}

	logging.Info("seed: sample catalog inserted", zap.Int("services", len(sampleCatalog)))
	return nil
}
