package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	proposalsSheet = "Proposals"
	itemsSheet     = "Items"
)

// GenerateProposalsExcel creates a workbook with one summary row per proposal
// and a second sheet listing every line item, and returns its contents.
func GenerateProposalsExcel(proposals []Proposal, currencySymbol string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), proposalsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("create items sheet: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	moneyFmt := fmt.Sprintf(`"%s" #,##0.00`, currencySymbol)
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Proposals sheet ─────────────────────────────────────────────────

	summaryHeaders := []string{"Number", "Client", "Status", "Created", "Items",
		"Services", "Additions", "Discount", "Tax", "Total"}
	summaryWidths := []float64{18, 32, 11, 12, 7, 15, 15, 15, 15, 16}
	if err := writeHeader(f, proposalsSheet, summaryHeaders, summaryWidths, headerStyle); err != nil {
		return nil, err
	}

	var grandTotal float64
	for i, p := range proposals {
		r := i + 2
		values := []any{
			sanitizeExcelCell(p.Number),
			sanitizeExcelCell(p.ClientName),
			p.Status,
			p.Created.Format("2006-01-02"),
			len(p.Items),
			RoundMoney(p.ServiceSubtotal),
			RoundMoney(p.AdditionsSubtotal),
			RoundMoney(p.DiscountApplied),
			RoundMoney(p.TaxAmount),
			RoundMoney(p.GrandTotal),
		}
		if err := writeRow(f, proposalsSheet, r, values); err != nil {
			return nil, err
		}
		f.SetCellStyle(proposalsSheet, cellName(1, r), cellName(5, r), textStyle)
		f.SetCellStyle(proposalsSheet, cellName(6, r), cellName(10, r), moneyStyle)
		grandTotal += p.GrandTotal
	}

	// Summary row.
	totalRow := len(proposals) + 3
	f.SetCellValue(proposalsSheet, cellName(9, totalRow), "Total:")
	f.SetCellValue(proposalsSheet, cellName(10, totalRow), RoundMoney(grandTotal))
	f.SetCellStyle(proposalsSheet, cellName(9, totalRow), cellName(10, totalRow), totalStyle)

	// ── Items sheet ─────────────────────────────────────────────────────

	itemHeaders := []string{"Proposal", "Service", "Category", "Attendance", "Qty",
		"Unit Price", "Subtotal", "Urgency", "Notes"}
	itemWidths := []float64{18, 32, 18, 12, 7, 15, 15, 15, 30}
	if err := writeHeader(f, itemsSheet, itemHeaders, itemWidths, headerStyle); err != nil {
		return nil, err
	}

	r := 2
	for _, p := range proposals {
		for _, item := range p.Items {
			values := []any{
				sanitizeExcelCell(p.Number),
				sanitizeExcelCell(item.ServiceName),
				sanitizeExcelCell(item.ServiceCategory),
				item.AttendanceMode,
				item.Quantity,
				RoundMoney(item.UnitPrice),
				RoundMoney(item.Subtotal),
				RoundMoney(item.UrgencyAmount),
				sanitizeExcelCell(item.Notes),
			}
			if err := writeRow(f, itemsSheet, r, values); err != nil {
				return nil, err
			}
			f.SetCellStyle(itemsSheet, cellName(1, r), cellName(5, r), textStyle)
			f.SetCellStyle(itemsSheet, cellName(6, r), cellName(8, r), moneyStyle)
			f.SetCellStyle(itemsSheet, cellName(9, r), cellName(9, r), textStyle)
			r++
		}
	}

	f.SetActiveSheet(0)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, h := range headers {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, colName, colName, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", colName, err)
		}
		f.SetCellValue(sheet, cellName(i+1, 1), h)
	}
	f.SetCellStyle(sheet, cellName(1, 1), cellName(len(headers), 1), style)
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	if err := f.SetSheetRow(sheet, cellName(1, row), &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// cellName returns the A1-style reference of a 1-based column and row.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
