package services

import (
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/collections"
	"quotedesk/logging"
)

// CatalogEntryFromRecord maps a services record.
func CatalogEntryFromRecord(r *core.Record) CatalogEntry {
	return CatalogEntry{
		ID:               r.Id,
		Name:             r.GetString("name"),
		Category:         r.GetString("category"),
		BillingMode:      r.GetString("billing_mode"),
		RemotePrice:      r.GetFloat("remote_price"),
		OnsitePrice:      r.GetFloat("onsite_price"),
		FixedPrice:       r.GetFloat("fixed_price"),
		BaseProjectPrice: r.GetFloat("base_project_price"),
		Active:           r.GetBool("active"),
		Created:          r.GetDateTime("created").Time(),
		Updated:          r.GetDateTime("updated").Time(),
	}
}

// ConfigurationFromRecord maps a configuration record.
func ConfigurationFromRecord(r *core.Record) Configuration {
	return Configuration{
		ID:               r.Id,
		UrgencyPercent:   r.GetFloat("urgency_percent"),
		FixedTravelFee:   r.GetFloat("fixed_travel_fee"),
		PerKmTravelFee:   r.GetFloat("per_km_travel_fee"),
		OnCallHourlyRate: r.GetFloat("on_call_hourly_rate"),
		TaxPercent:       r.GetFloat("tax_percent"),
		Created:          r.GetDateTime("created").Time(),
		Updated:          r.GetDateTime("updated").Time(),
	}
}

// CompanyFromRecord maps a company record.
func CompanyFromRecord(r *core.Record) Company {
	return Company{
		ID:      r.Id,
		Name:    r.GetString("name"),
		TaxID:   r.GetString("tax_id"),
		Address: r.GetString("address"),
		Phone:   r.GetString("phone"),
		Email:   r.GetString("email"),
		LogoURL: r.GetString("logo_url"),
		Created: r.GetDateTime("created").Time(),
		Updated: r.GetDateTime("updated").Time(),
	}
}

// ProposalFromRecord maps a proposals record, decoding the embedded items.
func ProposalFromRecord(r *core.Record) Proposal {
	var items []LineItem
	if err := r.UnmarshalJSONField("items", &items); err != nil {
		logging.Warn("records: could not decode proposal items", zap.String("id", r.Id), zap.Error(err))
	}
	if items == nil {
		items = []LineItem{}
	}

	return Proposal{
		ID:             r.Id,
		Number:         r.GetString("number"),
		ClientName:     r.GetString("client_name"),
		ClientEmail:    r.GetString("client_email"),
		ClientPhone:    r.GetString("client_phone"),
		ClientAddress:  r.GetString("client_address"),
		Items:          items,
		TravelKm:       r.GetFloat("travel_km"),
		OnCallHours:    r.GetFloat("on_call_hours"),
		GlobalUrgency:  r.GetBool("global_urgency"),
		DiscountKind:   r.GetString("discount_kind"),
		DiscountAmount: r.GetFloat("discount_amount"),
		Notes:          r.GetString("notes"),
		Status:         r.GetString("status"),
		UrgencyPercent: r.GetFloat("urgency_percent"),
		TaxPercent:     r.GetFloat("tax_percent"),
		Breakdown:      breakdownFromRecord(r),
		Created:        r.GetDateTime("created").Time(),
		Updated:        r.GetDateTime("updated").Time(),
	}
}

func breakdownFromRecord(r *core.Record) Breakdown {
	return Breakdown{
		ServiceSubtotal:      r.GetFloat("service_subtotal"),
		TotalUrgencyAmount:   r.GetFloat("total_urgency_amount"),
		TravelFee:            r.GetFloat("travel_fee"),
		OnCallFee:            r.GetFloat("on_call_fee"),
		AdditionsSubtotal:    r.GetFloat("additions_subtotal"),
		PreDiscountSubtotal:  r.GetFloat("pre_discount_subtotal"),
		DiscountApplied:      r.GetFloat("discount_applied"),
		PostDiscountSubtotal: r.GetFloat("post_discount_subtotal"),
		TaxAmount:            r.GetFloat("tax_amount"),
		GrandTotal:           r.GetFloat("grand_total"),
	}
}

func setBreakdown(r *core.Record, b Breakdown) {
	r.Set("service_subtotal", b.ServiceSubtotal)
	r.Set("total_urgency_amount", b.TotalUrgencyAmount)
	r.Set("travel_fee", b.TravelFee)
	r.Set("on_call_fee", b.OnCallFee)
	r.Set("additions_subtotal", b.AdditionsSubtotal)
	r.Set("pre_discount_subtotal", b.PreDiscountSubtotal)
	r.Set("discount_applied", b.DiscountApplied)
	r.Set("post_discount_subtotal", b.PostDiscountSubtotal)
	r.Set("tax_amount", b.TaxAmount)
	r.Set("grand_total", b.GrandTotal)
}

// setProposalFields writes every stored proposal field except the number
// and status from p onto r.
func setProposalFields(r *core.Record, p *Proposal) {
	setClientFields(r, p)
	r.Set("items", p.Items)
	r.Set("travel_km", p.TravelKm)
	r.Set("on_call_hours", p.OnCallHours)
	r.Set("global_urgency", p.GlobalUrgency)
	r.Set("discount_kind", p.DiscountKind)
	r.Set("discount_amount", p.DiscountAmount)
	r.Set("urgency_percent", p.UrgencyPercent)
	r.Set("tax_percent", p.TaxPercent)
	setBreakdown(r, p.Breakdown)
}

// setClientFields writes the client contact fields and notes, keeping the
// search key in step with the name.
func setClientFields(r *core.Record, p *Proposal) {
	r.Set("client_name", p.ClientName)
	r.Set("client_name_search", collections.ClientSearchKey(p.ClientName))
	r.Set("client_email", p.ClientEmail)
	r.Set("client_phone", p.ClientPhone)
	r.Set("client_address", p.ClientAddress)
	r.Set("notes", p.Notes)
}
