package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/services"
)

// HandleCompanyGet returns the company profile.
func HandleCompanyGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		company, err := services.GetCompany(app)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, company)
	}
}

// HandleCompanyUpsert creates the company profile or replaces it.
func HandleCompanyUpsert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in services.CompanyInput
		if err := readJSON(e, &in); err != nil {
			return ErrorJSON(e, err)
		}
		company, err := services.UpsertCompany(app, in)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, company)
	}
}

// HandleCompanyUpdate partially updates an existing company profile.
func HandleCompanyUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var patch services.CompanyPatch
		if err := readJSON(e, &patch); err != nil {
			return ErrorJSON(e, err)
		}
		company, err := services.PatchCompany(app, patch)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, company)
	}
}
