package services

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/apperr"
	"quotedesk/collections"
)

// GetCompany returns the company profile or NOT_FOUND when none was saved yet.
func GetCompany(app *pocketbase.PocketBase) (Company, error) {
	record, err := findSingleton(app, collections.Company)
	if err != nil {
		return Company{}, apperr.Internal("could not load company", err)
	}
	if record == nil {
		return Company{}, apperr.New(apperr.TypeNotFound, "company profile not found")
	}
	return CompanyFromRecord(record), nil
}

// UpsertCompany replaces the company profile, creating it on first use.
func UpsertCompany(app *pocketbase.PocketBase, in CompanyInput) (Company, error) {
	record, err := findSingleton(app, collections.Company)
	if err != nil {
		return Company{}, apperr.Internal("could not load company", err)
	}
	if record == nil {
		if record, err = newRecord(app, collections.Company); err != nil {
			return Company{}, err
		}
	}

	record.Set("name", in.Name)
	record.Set("tax_id", in.TaxID)
	record.Set("address", in.Address)
	record.Set("phone", in.Phone)
	record.Set("email", in.Email)
	record.Set("logo_url", in.LogoURL)
	return saveCompany(app, record)
}

// PatchCompany applies the non-nil fields of p to the existing profile.
func PatchCompany(app *pocketbase.PocketBase, p CompanyPatch) (Company, error) {
	record, err := findSingleton(app, collections.Company)
	if err != nil {
		return Company{}, apperr.Internal("could not load company", err)
	}
	if record == nil {
		return Company{}, apperr.New(apperr.TypeNotFound, "company profile not found")
	}

	setIf(record.Set, "name", p.Name)
	setIf(record.Set, "tax_id", p.TaxID)
	setIf(record.Set, "address", p.Address)
	setIf(record.Set, "phone", p.Phone)
	setIf(record.Set, "email", p.Email)
	setIf(record.Set, "logo_url", p.LogoURL)
	return saveCompany(app, record)
}

func saveCompany(app *pocketbase.PocketBase, record *core.Record) (Company, error) {
	if err := app.Save(record); err != nil {
		return Company{}, apperr.Internal("could not save company", err)
	}
	return CompanyFromRecord(record), nil
}
