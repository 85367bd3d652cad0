package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"quotedesk/apperr"
	"quotedesk/services"
)

// HandleServiceList lists catalog entries, optionally filtered by
// ?active=true|false and ?category=.
func HandleServiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		var filter services.ServiceFilter
		if raw := q.Get("active"); raw != "" {
			active, err := cast.ToBoolE(raw)
			if err != nil {
				return ErrorJSON(e, apperr.Newf(apperr.TypeInput, "invalid active filter %q", raw))
			}
			filter.Active = &active
		}
		filter.Category = q.Get("category")

		entries, err := services.ListServices(app, filter)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, entries)
	}
}

// HandleServiceCreate adds a catalog entry.
func HandleServiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in services.ServiceInput
		if err := readJSON(e, &in); err != nil {
			return ErrorJSON(e, err)
		}
		entry, err := services.CreateService(app, in)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, entry)
	}
}

// HandleServiceGet returns one catalog entry.
func HandleServiceGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, err := services.GetService(app, e.Request.PathValue("id"))
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, entry)
	}
}

// HandleServiceUpdate applies a partial update to a catalog entry.
func HandleServiceUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var patch services.ServicePatch
		if err := readJSON(e, &patch); err != nil {
			return ErrorJSON(e, err)
		}
		entry, err := services.UpdateService(app, e.Request.PathValue("id"), patch)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, entry)
	}
}

// HandleServiceDelete deactivates a catalog entry. It is never removed.
func HandleServiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := services.DeactivateService(app, e.Request.PathValue("id")); err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": "Service deactivated"})
	}
}

// HandleCategoryList lists active categories with their entry counts.
func HandleCategoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		categories, err := services.ListCategories(app)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, categories)
	}
}
