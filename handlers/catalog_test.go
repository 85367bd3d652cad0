package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/services"
	"quotedesk/testhelpers"
)

func TestHandleServiceCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	res := serveJSON(t, app, HandleServiceCreate(app), http.MethodPost, "/api/services", map[string]any{
		"name":        "Firewall setup",
		"category":    "Security",
		"billingMode": "fixed",
		"fixedPrice":  800,
	}, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	entry := decodeBody[services.CatalogEntry](t, res)
	assert.NotEmpty(t, entry.ID)
	assert.True(t, entry.Active, "new entries are active by default")
	assert.Equal(t, services.BillingFixed, entry.BillingMode)
	assert.InDelta(t, 800, entry.FixedPrice, 0.001)
}

func TestHandleServiceCreate_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"category": "Security", "billingMode": "fixed"}},
		{"missing category", map[string]any{"name": "X", "billingMode": "fixed"}},
		{"bad billing mode", map[string]any{"name": "X", "category": "Y", "billingMode": "hourly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := serveJSON(t, app, HandleServiceCreate(app), http.MethodPost, "/api/services", tt.body, nil)
			assertErrorCode(t, res, http.StatusBadRequest, "INPUT_ERROR")
		})
	}
}

func TestHandleServiceList_ActiveFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Backup", "Storage", services.BillingRemote, testhelpers.ServicePrices{Remote: 50})
	old := testhelpers.CreateTestService(t, app, "Tape rotation", "Storage", services.BillingOnsite, testhelpers.ServicePrices{Onsite: 70})
	testhelpers.DeactivateTestService(t, app, old)

	tests := []struct {
		target string
		want   []string
	}{
		{"/api/services", []string{"Backup", "Tape rotation"}},
		{"/api/services?active=true", []string{"Backup"}},
		{"/api/services?active=false", []string{"Tape rotation"}},
		{"/api/services?category=Network", nil},
	}
	for _, tt := range tests {
		res := serveJSON(t, app, HandleServiceList(app), http.MethodGet, tt.target, nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var names []string
		for _, e := range decodeBody[[]services.CatalogEntry](t, res) {
			names = append(names, e.Name)
		}
		assert.Equal(t, tt.want, names, tt.target)
	}

	bad := serveJSON(t, app, HandleServiceList(app), http.MethodGet, "/api/services?active=maybe", nil, nil)
	assertErrorCode(t, bad, http.StatusBadRequest, "INPUT_ERROR")
}

func TestHandleServiceUpdateAndDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	svc := testhelpers.CreateTestService(t, app, "Backup", "Storage", services.BillingRemote, testhelpers.ServicePrices{Remote: 50})
	path := map[string]string{"id": svc.Id}

	res := serveJSON(t, app, HandleServiceUpdate(app), http.MethodPut, "/api/services/"+svc.Id,
		map[string]any{"remotePrice": 65}, path)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	updated := decodeBody[services.CatalogEntry](t, res)
	assert.InDelta(t, 65, updated.RemotePrice, 0.001)
	assert.Equal(t, "Backup", updated.Name, "omitted fields are kept")

	del := serveJSON(t, app, HandleServiceDelete(app), http.MethodDelete, "/api/services/"+svc.Id, nil, path)
	require.Equal(t, http.StatusOK, del.Code)

	get := serveJSON(t, app, HandleServiceGet(app), http.MethodGet, "/api/services/"+svc.Id, nil, path)
	require.Equal(t, http.StatusOK, get.Code, "deactivated entries stay readable")
	assert.False(t, decodeBody[services.CatalogEntry](t, get).Active)

	missing := serveJSON(t, app, HandleServiceGet(app), http.MethodGet, "/api/services/nope", nil,
		map[string]string{"id": "nope"})
	assertErrorCode(t, missing, http.StatusNotFound, "NOT_FOUND")
}

func TestHandleCategoryList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Backup", "Storage", services.BillingRemote, testhelpers.ServicePrices{Remote: 50})
	testhelpers.CreateTestService(t, app, "Restore", "Storage", services.BillingRemote, testhelpers.ServicePrices{Remote: 50})
	testhelpers.CreateTestService(t, app, "Audit", "Security", services.BillingFixed, testhelpers.ServicePrices{Fixed: 300})

	res := serveJSON(t, app, HandleCategoryList(app), http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	got := decodeBody[[]services.Category](t, res)
	assert.Equal(t, []services.Category{
		{Name: "Security", ServiceCount: 1},
		{Name: "Storage", ServiceCount: 2},
	}, got)
}

func TestHandleCompany_Lifecycle(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	missing := serveJSON(t, app, HandleCompanyGet(app), http.MethodGet, "/api/company", nil, nil)
	assertErrorCode(t, missing, http.StatusNotFound, "NOT_FOUND")

	patchFirst := serveJSON(t, app, HandleCompanyUpdate(app), http.MethodPut, "/api/company",
		map[string]any{"phone": "123"}, nil)
	assertErrorCode(t, patchFirst, http.StatusNotFound, "NOT_FOUND")

	created := serveJSON(t, app, HandleCompanyUpsert(app), http.MethodPost, "/api/company",
		map[string]any{"name": "Fervid", "email": "hi@fervid.example", "phone": "555"}, nil)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())

	patched := serveJSON(t, app, HandleCompanyUpdate(app), http.MethodPut, "/api/company",
		map[string]any{"address": "Rua A, 1"}, nil)
	require.Equal(t, http.StatusOK, patched.Code)
	c := decodeBody[services.Company](t, patched)
	assert.Equal(t, "Fervid", c.Name)
	assert.Equal(t, "555", c.Phone)
	assert.Equal(t, "Rua A, 1", c.Address)

	replaced := serveJSON(t, app, HandleCompanyUpsert(app), http.MethodPost, "/api/company",
		map[string]any{"name": "Fervid Ltda"}, nil)
	require.Equal(t, http.StatusOK, replaced.Code)
	c = decodeBody[services.Company](t, replaced)
	assert.Equal(t, "Fervid Ltda", c.Name)
	assert.Empty(t, c.Phone, "upsert replaces every field")

	bad := serveJSON(t, app, HandleCompanyUpsert(app), http.MethodPost, "/api/company",
		map[string]any{"name": "X", "email": "not-an-email"}, nil)
	assertErrorCode(t, bad, http.StatusBadRequest, "INPUT_ERROR")
}

func TestHandleConfiguration(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	first := serveJSON(t, app, HandleConfigurationGet(app), http.MethodGet, "/api/configuration", nil, nil)
	require.Equal(t, http.StatusOK, first.Code)
	cfg := decodeBody[services.Configuration](t, first)
	assert.NotEmpty(t, cfg.ID, "a default profile is created on first read")
	assert.Zero(t, cfg.TaxPercent)

	saved := serveJSON(t, app, HandleConfigurationSave(app), http.MethodPost, "/api/configuration",
		map[string]any{"urgencyPercent": 15, "taxPercent": 8}, nil)
	require.Equal(t, http.StatusOK, saved.Code)
	updated := decodeBody[services.Configuration](t, saved)
	assert.Equal(t, cfg.ID, updated.ID)
	assert.InDelta(t, 15, updated.UrgencyPercent, 0.001)
	assert.InDelta(t, 8, updated.TaxPercent, 0.001)

	total, err := app.CountRecords("configuration")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestHandleDashboard(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Backup", "Storage", services.BillingRemote, testhelpers.ServicePrices{Remote: 50})
	testhelpers.CreateTestProposal(t, app, "PROP-1", "Acme", services.StatusApproved, 100)
	testhelpers.CreateTestProposal(t, app, "PROP-2", "Acme", services.StatusApproved, 250.5)
	testhelpers.CreateTestProposal(t, app, "PROP-3", "Globex", services.StatusDraft, 999)

	res := serveJSON(t, app, HandleDashboard(app), http.MethodGet, "/api/dashboard", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	stats := decodeBody[services.DashboardStats](t, res)
	assert.EqualValues(t, 1, stats.ActiveServices)
	assert.EqualValues(t, 3, stats.TotalProposals)
	assert.EqualValues(t, 2, stats.ProposalsByStatus[services.StatusApproved])
	assert.EqualValues(t, 1, stats.ProposalsByStatus[services.StatusDraft])
	assert.InDelta(t, 350.5, stats.ApprovedTotal, 0.001)
}
