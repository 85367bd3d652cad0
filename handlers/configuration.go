package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/services"
)

// HandleConfigurationGet returns the pricing profile, creating a default one
// on first access.
func HandleConfigurationGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg, err := services.GetOrCreateConfiguration(app)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, cfg)
	}
}

// HandleConfigurationSave replaces the pricing profile.
func HandleConfigurationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in services.ConfigurationInput
		if err := readJSON(e, &in); err != nil {
			return ErrorJSON(e, err)
		}
		cfg, err := services.SaveConfiguration(app, in)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, cfg)
	}
}

// HandleDashboard returns the headline counters.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		stats, err := services.BuildDashboard(app)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, stats)
	}
}
