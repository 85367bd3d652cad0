// Package services provides pricing, numbering, persistence helpers and
// document exports for proposals.
package services

// LineInput is a line item whose unit price has already been resolved.
type LineInput struct {
	Quantity       float64
	UnitPrice      float64
	UrgencyApplied bool
}

// Extras holds the proposal-level pricing inputs.
type Extras struct {
	TravelKm       float64
	OnCallHours    float64
	GlobalUrgency  bool
	DiscountKind   string
	DiscountAmount float64
}

// LineResult is the priced counterpart of a LineInput.
type LineResult struct {
	Subtotal      float64
	UrgencyAmount float64
}

// Breakdown is the full set of monetary values derived for one proposal.
type Breakdown struct {
	ServiceSubtotal      float64 `json:"serviceSubtotal"`
	TotalUrgencyAmount   float64 `json:"totalUrgencyAmount"`
	TravelFee            float64 `json:"travelFee"`
	OnCallFee            float64 `json:"onCallFee"`
	AdditionsSubtotal    float64 `json:"additionsSubtotal"`
	PreDiscountSubtotal  float64 `json:"preDiscountSubtotal"`
	DiscountApplied      float64 `json:"discountApplied"`
	PostDiscountSubtotal float64 `json:"postDiscountSubtotal"`
	TaxAmount            float64 `json:"taxAmount"`
	GrandTotal           float64 `json:"grandTotal"`

	// Lines is index-aligned with the inputs.
	Lines []LineResult `json:"-"`
}

// CalcProposal prices a proposal. Inputs are not range-checked: negative
// quantities, prices, distances or discounts flow straight through the
// arithmetic and may yield a negative total.
func CalcProposal(items []LineInput, cfg Configuration, extras Extras) Breakdown {
	var b Breakdown
	b.Lines = make([]LineResult, len(items))

	urgent := cfg.UrgencyPercent / 100
	for i, item := range items {
		subtotal := item.Quantity * item.UnitPrice
		b.ServiceSubtotal += subtotal

		line := LineResult{Subtotal: subtotal}
		if item.UrgencyApplied || extras.GlobalUrgency {
			line.UrgencyAmount = subtotal * urgent
			b.TotalUrgencyAmount += line.UrgencyAmount
		}
		b.Lines[i] = line
	}

	b.TravelFee = CalcTravelFee(extras.TravelKm, cfg)
	b.OnCallFee = extras.OnCallHours * cfg.OnCallHourlyRate

	b.AdditionsSubtotal = b.TotalUrgencyAmount + b.TravelFee + b.OnCallFee
	b.PreDiscountSubtotal = b.ServiceSubtotal + b.AdditionsSubtotal

	b.DiscountApplied = CalcDiscount(b.PreDiscountSubtotal, extras.DiscountKind, extras.DiscountAmount)
	b.PostDiscountSubtotal = b.PreDiscountSubtotal - b.DiscountApplied

	b.TaxAmount = b.PostDiscountSubtotal * (cfg.TaxPercent / 100)
	b.GrandTotal = b.PostDiscountSubtotal + b.TaxAmount

	return b
}

// CalcTravelFee returns the travel charge for a trip of km kilometres.
// A positive fixed fee replaces the per-km rate; no trip means no fee.
func CalcTravelFee(km float64, cfg Configuration) float64 {
	if km <= 0 {
		return 0
	}
	if cfg.FixedTravelFee > 0 {
		return cfg.FixedTravelFee
	}
	return km * cfg.PerKmTravelFee
}

// CalcDiscount returns the amount to subtract from base. Only positive
// amounts apply. Unknown kinds are treated as a fixed amount.
func CalcDiscount(base float64, kind string, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if kind == DiscountPercent {
		return base * (amount / 100)
	}
	return amount
}
