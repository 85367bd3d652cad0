package services

import (
	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"quotedesk/apperr"
	"quotedesk/collections"
	"quotedesk/logging"
)

// GetOrCreateConfiguration returns the pricing profile, creating an all-zero
// one when none exists. Nothing is cached and creation is not locked, so two
// concurrent first reads may each insert a profile; the oldest one wins on
// every later read.
func GetOrCreateConfiguration(app *pocketbase.PocketBase) (Configuration, error) {
	record, err := findSingleton(app, collections.Configuration)
	if err != nil {
		return Configuration{}, apperr.Internal("could not load configuration", err)
	}
	if record != nil {
		return ConfigurationFromRecord(record), nil
	}

	record, err = newRecord(app, collections.Configuration)
	if err != nil {
		return Configuration{}, err
	}
	for _, field := range []string{"urgency_percent", "fixed_travel_fee", "per_km_travel_fee", "on_call_hourly_rate", "tax_percent"} {
		record.Set(field, 0)
	}
	if err := app.Save(record); err != nil {
		return Configuration{}, apperr.Internal("could not create default configuration", err)
	}
	logging.Info("configuration: default profile created", zap.String("id", record.Id))
	return ConfigurationFromRecord(record), nil
}

// SaveConfiguration replaces every knob of the profile, creating it if needed.
func SaveConfiguration(app *pocketbase.PocketBase, in ConfigurationInput) (Configuration, error) {
	record, err := findSingleton(app, collections.Configuration)
	if err != nil {
		return Configuration{}, apperr.Internal("could not load configuration", err)
	}
	if record == nil {
		if record, err = newRecord(app, collections.Configuration); err != nil {
			return Configuration{}, err
		}
	}

	record.Set("urgency_percent", in.UrgencyPercent)
	record.Set("fixed_travel_fee", in.FixedTravelFee)
	record.Set("per_km_travel_fee", in.PerKmTravelFee)
	record.Set("on_call_hourly_rate", in.OnCallHourlyRate)
	record.Set("tax_percent", in.TaxPercent)

	if err := app.Save(record); err != nil {
		return Configuration{}, apperr.Internal("could not save configuration", err)
	}
	return ConfigurationFromRecord(record), nil
}
