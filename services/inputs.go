package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"quotedesk/collections"
)

// textLimit bounds every free-text request field.
var textLimit = validation.RuneLength(0, collections.MaxTextLength)

func stringsToAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// LineItemInput is a proposal line as submitted by a client, before its
// unit price has been resolved against the catalog.
type LineItemInput struct {
	ServiceID      string   `json:"serviceId"`
	AttendanceMode string   `json:"attendanceMode"`
	Quantity       *float64 `json:"quantity"`
	UrgencyApplied bool     `json:"urgencyApplied"`
	Notes          string   `json:"notes"`
}

// Validate implements validation.Validatable.
func (in LineItemInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ServiceID, validation.Required, textLimit),
		validation.Field(&in.AttendanceMode, validation.In(stringsToAny(AttendanceModes)...)),
		validation.Field(&in.Notes, textLimit),
	)
}

// Mode returns the attendance mode, defaulting to remote.
func (in LineItemInput) Mode() string {
	if in.AttendanceMode == "" {
		return AttendanceRemote
	}
	return in.AttendanceMode
}

// Qty returns the quantity, defaulting to 1 when omitted.
func (in LineItemInput) Qty() float64 {
	if in.Quantity == nil {
		return 1
	}
	return *in.Quantity
}

// PreviewItem is an ad-hoc line priced by the preview endpoint.
type PreviewItem struct {
	Quantity       *float64 `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"`
	UrgencyApplied bool     `json:"urgencyApplied"`
}

// LineInput converts the preview item for the pricing engine.
func (p PreviewItem) LineInput() LineInput {
	qty := 1.0
	if p.Quantity != nil {
		qty = *p.Quantity
	}
	return LineInput{Quantity: qty, UnitPrice: p.UnitPrice, UrgencyApplied: p.UrgencyApplied}
}

// PreviewInput is the body of a calculate-preview request.
type PreviewInput struct {
	Items          []PreviewItem `json:"items"`
	TravelKm       float64       `json:"travelKm"`
	OnCallHours    float64       `json:"onCallHours"`
	GlobalUrgency  bool          `json:"globalUrgency"`
	DiscountKind   string        `json:"discountKind"`
	DiscountAmount float64       `json:"discountAmount"`
}

// ProposalInput is the body of a create-proposal request.
type ProposalInput struct {
	ClientName     string          `json:"clientName"`
	ClientEmail    string          `json:"clientEmail"`
	ClientPhone    string          `json:"clientPhone"`
	ClientAddress  string          `json:"clientAddress"`
	Items          []LineItemInput `json:"items"`
	TravelKm       float64         `json:"travelKm"`
	OnCallHours    float64         `json:"onCallHours"`
	GlobalUrgency  bool            `json:"globalUrgency"`
	DiscountKind   string          `json:"discountKind"`
	DiscountAmount float64         `json:"discountAmount"`
	Notes          string          `json:"notes"`
}

// Validate implements validation.Validatable. Line items are validated
// individually through their own Validate method.
func (in ProposalInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ClientName, validation.Required, textLimit),
		validation.Field(&in.ClientEmail, textLimit, is.EmailFormat),
		validation.Field(&in.ClientPhone, textLimit),
		validation.Field(&in.ClientAddress, textLimit),
		validation.Field(&in.Items, validation.NotNil),
		validation.Field(&in.DiscountKind, textLimit),
		validation.Field(&in.Notes, textLimit),
	)
}

// ProposalPatch is the body of an update-proposal request. Nil fields are
// left untouched.
type ProposalPatch struct {
	ClientName     *string          `json:"clientName"`
	ClientEmail    *string          `json:"clientEmail"`
	ClientPhone    *string          `json:"clientPhone"`
	ClientAddress  *string          `json:"clientAddress"`
	Items          *[]LineItemInput `json:"items"`
	TravelKm       *float64         `json:"travelKm"`
	OnCallHours    *float64         `json:"onCallHours"`
	GlobalUrgency  *bool            `json:"globalUrgency"`
	DiscountKind   *string          `json:"discountKind"`
	DiscountAmount *float64         `json:"discountAmount"`
	Notes          *string          `json:"notes"`
	Status         *string          `json:"status"`
}

// Validate implements validation.Validatable.
func (p ProposalPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ClientName, validation.NilOrNotEmpty, textLimit),
		validation.Field(&p.ClientEmail, textLimit, is.EmailFormat),
		validation.Field(&p.ClientPhone, textLimit),
		validation.Field(&p.ClientAddress, textLimit),
		validation.Field(&p.Items),
		validation.Field(&p.DiscountKind, textLimit),
		validation.Field(&p.Notes, textLimit),
		validation.Field(&p.Status, validation.NilOrNotEmpty, validation.In(stringsToAny(ProposalStatuses)...)),
	)
}

// TouchesPricing reports whether applying the patch requires re-pricing.
func (p ProposalPatch) TouchesPricing() bool {
	return p.Items != nil ||
		p.TravelKm != nil ||
		p.OnCallHours != nil ||
		p.GlobalUrgency != nil ||
		p.DiscountKind != nil ||
		p.DiscountAmount != nil
}

// ServiceInput is the body of a create-service request.
type ServiceInput struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	BillingMode      string  `json:"billingMode"`
	RemotePrice      float64 `json:"remotePrice"`
	OnsitePrice      float64 `json:"onsitePrice"`
	FixedPrice       float64 `json:"fixedPrice"`
	BaseProjectPrice float64 `json:"baseProjectPrice"`
	Active           *bool   `json:"active"`
}

// Validate implements validation.Validatable.
func (in ServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, textLimit),
		validation.Field(&in.Category, validation.Required, textLimit),
		validation.Field(&in.BillingMode, validation.Required, validation.In(stringsToAny(BillingModes)...)),
	)
}

// ServicePatch is the body of an update-service request.
type ServicePatch struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	BillingMode      *string  `json:"billingMode"`
	RemotePrice      *float64 `json:"remotePrice"`
	OnsitePrice      *float64 `json:"onsitePrice"`
	FixedPrice       *float64 `json:"fixedPrice"`
	BaseProjectPrice *float64 `json:"baseProjectPrice"`
	Active           *bool    `json:"active"`
}

// Validate implements validation.Validatable.
func (p ServicePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, textLimit),
		validation.Field(&p.Category, validation.NilOrNotEmpty, textLimit),
		validation.Field(&p.BillingMode, validation.NilOrNotEmpty, validation.In(stringsToAny(BillingModes)...)),
	)
}

// CompanyInput is the body of an upsert-company request.
type CompanyInput struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logoUrl"`
}

// Validate implements validation.Validatable.
func (in CompanyInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, textLimit),
		validation.Field(&in.TaxID, textLimit),
		validation.Field(&in.Address, textLimit),
		validation.Field(&in.Phone, textLimit),
		validation.Field(&in.Email, textLimit, is.EmailFormat),
		validation.Field(&in.LogoURL, textLimit),
	)
}

// CompanyPatch is the body of a partial company update.
type CompanyPatch struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"taxId"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	LogoURL *string `json:"logoUrl"`
}

// Validate implements validation.Validatable.
func (p CompanyPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, textLimit),
		validation.Field(&p.TaxID, textLimit),
		validation.Field(&p.Address, textLimit),
		validation.Field(&p.Phone, textLimit),
		validation.Field(&p.Email, textLimit, is.EmailFormat),
		validation.Field(&p.LogoURL, textLimit),
	)
}

// ConfigurationInput replaces every pricing knob. Omitted knobs are 0.
type ConfigurationInput struct {
	UrgencyPercent   float64 `json:"urgencyPercent"`
	FixedTravelFee   float64 `json:"fixedTravelFee"`
	PerKmTravelFee   float64 `json:"perKmTravelFee"`
	OnCallHourlyRate float64 `json:"onCallHourlyRate"`
	TaxPercent       float64 `json:"taxPercent"`
}
