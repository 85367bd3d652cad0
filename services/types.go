package services

import (
	"time"

	"quotedesk/collections"
)

// Billing modes of a catalog entry.
const (
	BillingRemote  = collections.BillingRemote
	BillingOnsite  = collections.BillingOnsite
	BillingFixed   = collections.BillingFixed
	BillingProject = collections.BillingProject
)

// Attendance modes of a proposal line item.
const (
	AttendanceRemote = "remote"
	AttendanceOnsite = "onsite"
)

// Discount kinds. Any other value is priced as DiscountFixed.
const (
	DiscountFixed   = "fixed"
	DiscountPercent = "percent"
)

// Proposal statuses.
const (
	StatusDraft    = collections.StatusDraft
	StatusSent     = collections.StatusSent
	StatusApproved = collections.StatusApproved
	StatusRejected = collections.StatusRejected
)

// BillingModes lists the accepted billing modes in display order.
var BillingModes = collections.BillingModes

// AttendanceModes lists the accepted attendance modes.
var AttendanceModes = []string{AttendanceRemote, AttendanceOnsite}

// ProposalStatuses lists the proposal lifecycle states.
var ProposalStatuses = collections.ProposalStatuses

// Configuration is the singleton pricing profile.
type Configuration struct {
	ID               string    `json:"id"`
	UrgencyPercent   float64   `json:"urgencyPercent"`
	FixedTravelFee   float64   `json:"fixedTravelFee"`
	PerKmTravelFee   float64   `json:"perKmTravelFee"`
	OnCallHourlyRate float64   `json:"onCallHourlyRate"`
	TaxPercent       float64   `json:"taxPercent"`
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`
}

// CatalogEntry is a service offered by the business.
type CatalogEntry struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	BillingMode      string    `json:"billingMode"`
	RemotePrice      float64   `json:"remotePrice"`
	OnsitePrice      float64   `json:"onsitePrice"`
	FixedPrice       float64   `json:"fixedPrice"`
	BaseProjectPrice float64   `json:"baseProjectPrice"`
	Active           bool      `json:"active"`
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`
}

// Company is the singleton profile of the business issuing proposals.
type Company struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	TaxID   string    `json:"taxId"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	LogoURL string    `json:"logoUrl,omitempty"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// LineItem is a priced proposal line as stored inside the proposal document.
type LineItem struct {
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServiceCategory string  `json:"serviceCategory"`
	AttendanceMode  string  `json:"attendanceMode"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	Subtotal        float64 `json:"subtotal"`
	UrgencyApplied  bool    `json:"urgencyApplied"`
	UrgencyAmount   float64 `json:"urgencyAmount"`
	Notes           string  `json:"notes,omitempty"`
}

// Proposal is a client quote together with its computed breakdown.
type Proposal struct {
	ID             string     `json:"id"`
	Number         string     `json:"number"`
	ClientName     string     `json:"clientName"`
	ClientEmail    string     `json:"clientEmail,omitempty"`
	ClientPhone    string     `json:"clientPhone,omitempty"`
	ClientAddress  string     `json:"clientAddress,omitempty"`
	Items          []LineItem `json:"items"`
	TravelKm       float64    `json:"travelKm"`
	OnCallHours    float64    `json:"onCallHours"`
	GlobalUrgency  bool       `json:"globalUrgency"`
	DiscountKind   string     `json:"discountKind"`
	DiscountAmount float64    `json:"discountAmount"`
	Notes          string     `json:"notes,omitempty"`
	Status         string     `json:"status"`

	// UrgencyPercent and TaxPercent are the configuration rates the
	// breakdown was last computed with.
	UrgencyPercent float64 `json:"urgencyPercent"`
	TaxPercent     float64 `json:"taxPercent"`
	Breakdown
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Extras returns the proposal-level pricing inputs.
func (p *Proposal) Extras() Extras {
	return Extras{
		TravelKm:       p.TravelKm,
		OnCallHours:    p.OnCallHours,
		GlobalUrgency:  p.GlobalUrgency,
		DiscountKind:   p.DiscountKind,
		DiscountAmount: p.DiscountAmount,
	}
}

// LineInputs returns the already-resolved pricing inputs of the stored lines.
func (p *Proposal) LineInputs() []LineInput {
	inputs := make([]LineInput, len(p.Items))
	for i, item := range p.Items {
		inputs[i] = LineInput{
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			UrgencyApplied: item.UrgencyApplied,
		}
	}
	return inputs
}
