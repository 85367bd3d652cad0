package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	darkColor  = &props.Color{Red: 33, Green: 37, Blue: 41}
	mutedColor = &props.Color{Red: 100, Green: 100, Blue: 100}
	whiteColor = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// GenerateProposalPDF renders a proposal as an A4 PDF using maroto/v2.
func GenerateProposalPDF(data *ProposalExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addProposalHeader(m, data)
	addClientBlock(m, data)
	addLineItemsTable(m, data)
	addTotals(m, data)
	addNotes(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate proposal PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addProposalHeader adds the issuing company (left) and the proposal number (right).
func addProposalHeader(m core.Maroto, data *ProposalExportData) {
	companyName := "Service Proposal"
	if data.HasCompany {
		companyName = data.Company.Name
	}

	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(companyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("PROPOSAL", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: darkColor,
				}),
			),
		),
	)

	var contact string
	if data.HasCompany {
		c := data.Company
		contact = joinNonEmpty([]string{fmtField("Tax ID", c.TaxID), c.Address, c.Phone, c.Email}, " | ")
	}
	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(
				text.New(contact, props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("No. %s | %s", data.Proposal.Number, data.IssuedDate), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addClientBlock adds the client contact details.
func addClientBlock(m core.Maroto, data *ProposalExportData) {
	p := data.Proposal
	label := props.Text{Size: 8, Style: fontstyle.Bold, Color: mutedColor}
	value := props.Text{Size: 9}
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("CLIENT", label)).WithStyle(headerCell),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(p.ClientName, props.Text{Size: 10, Style: fontstyle.Bold})),
		),
	)

	if details := joinNonEmpty([]string{p.ClientEmail, p.ClientPhone}, " | "); details != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(details, value))))
	}
	if p.ClientAddress != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(p.ClientAddress, value))))
	}

	m.AddRows(row.New(3))
}

// addLineItemsTable adds the services table with header and body rows.
func addLineItemsTable(m core.Maroto, data *ProposalExportData) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: whiteColor,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: darkColor}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Service", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Attendance", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}

	for i, item := range data.Proposal.Items {
		desc := item.ServiceName
		if item.ServiceCategory != "" {
			desc += " (" + item.ServiceCategory + ")"
		}
		if item.UrgencyApplied || data.Proposal.GlobalUrgency {
			desc += " [urgent]"
		}
		if item.Notes != "" {
			desc += " - " + item.Notes
		}

		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText)),
			col.New(4).Add(text.New(desc, bodyTextLeft)),
			col.New(2).Add(text.New(attendanceLabel(item.AttendanceMode), bodyText)),
			col.New(1).Add(text.New(formatQty(item.Quantity), bodyTextRight)),
			col.New(2).Add(text.New(data.Money(item.UnitPrice), bodyTextRight)),
			col.New(2).Add(text.New(data.Money(item.Subtotal), bodyTextRight)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: altBg})
			}
		}

		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addTotals adds right-aligned breakdown rows ending in the grand total.
func addTotals(m core.Maroto, data *ProposalExportData) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	grandCell := &props.Cell{BackgroundColor: darkColor}
	grandStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: whiteColor}

	for _, line := range data.SummaryLines() {
		label := line.Label
		switch label {
		case "Urgency surcharge":
			label = fmt.Sprintf("%s (%s%%)", label, formatQty(data.UrgencyPercent))
		case "Tax":
			label = fmt.Sprintf("%s (%s%%)", label, formatQty(data.TaxPercent))
		}

		if line.Strong {
			m.AddRows(
				row.New(8).Add(
					col.New(9).Add(text.New(label, grandStyle)).WithStyle(grandCell),
					col.New(3).Add(text.New(data.Money(line.Amount), grandStyle)).WithStyle(grandCell),
				),
			)
			continue
		}
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(data.Money(line.Amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(3))
}

func addNotes(m core.Maroto, data *ProposalExportData) {
	if strings.TrimSpace(data.Proposal.Notes) == "" {
		return
	}
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("NOTES", props.Text{Size: 8, Style: fontstyle.Bold, Color: mutedColor}))),
		row.New(12).Add(col.New(12).Add(text.New(data.Proposal.Notes, props.Text{Size: 8}))),
	)
}

func attendanceLabel(mode string) string {
	switch mode {
	case AttendanceOnsite:
		return "Onsite"
	case AttendanceRemote:
		return "Remote"
	}
	return mode
}

func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
