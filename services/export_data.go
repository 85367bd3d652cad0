package services

import (
	"github.com/pocketbase/pocketbase"

	"quotedesk/apperr"
)

// ProposalExportData holds all data needed to render one proposal as a PDF
// or printable page.
type ProposalExportData struct {
	Company        Company
	HasCompany     bool
	Proposal       Proposal
	CurrencySymbol string
	IssuedDate     string

	// Rates stored on the proposal, not the current configuration.
	UrgencyPercent float64
	TaxPercent     float64
}

// Money formats amount with the export's currency symbol.
func (d *ProposalExportData) Money(amount float64) string {
	return FormatMoney(d.CurrencySymbol, amount)
}

// SummaryLine is one label/value pair of the totals block.
type SummaryLine struct {
	Label  string
	Amount float64
	Strong bool
}

// SummaryLines lists the breakdown in display order. Zero-valued optional
// additions are left out.
func (d *ProposalExportData) SummaryLines() []SummaryLine {
	b := d.Proposal.Breakdown
	lines := []SummaryLine{{Label: "Services subtotal", Amount: b.ServiceSubtotal}}
	optional := []SummaryLine{
		{Label: "Urgency surcharge", Amount: b.TotalUrgencyAmount},
		{Label: "Travel", Amount: b.TravelFee},
		{Label: "On-call", Amount: b.OnCallFee},
	}
	for _, l := range optional {
		if l.Amount != 0 {
			lines = append(lines, l)
		}
	}
	if b.DiscountApplied != 0 {
		lines = append(lines, SummaryLine{Label: "Discount", Amount: -b.DiscountApplied})
	}
	lines = append(lines,
		SummaryLine{Label: "Subtotal", Amount: b.PostDiscountSubtotal},
		SummaryLine{Label: "Tax", Amount: b.TaxAmount},
		SummaryLine{Label: "Total", Amount: b.GrandTotal, Strong: true},
	)
	return lines
}

// BuildProposalExportData gathers the proposal, the company profile (if any)
// and the rates the proposal was priced with.
func BuildProposalExportData(app *pocketbase.PocketBase, proposalID, currencySymbol string) (*ProposalExportData, error) {
	p, err := GetProposal(app, proposalID)
	if err != nil {
		return nil, err
	}

	data := &ProposalExportData{
		Proposal:       p,
		CurrencySymbol: currencySymbol,
		IssuedDate:     p.Created.Format("02/01/2006"),
		UrgencyPercent: p.UrgencyPercent,
		TaxPercent:     p.TaxPercent,
	}

	company, err := GetCompany(app)
	switch {
	case err == nil:
		data.Company = company
		data.HasCompany = true
	case !apperr.IsType(err, apperr.TypeNotFound):
		return nil, err
	}

	return data, nil
}
