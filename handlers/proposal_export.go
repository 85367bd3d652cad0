package handlers

import (
	"fmt"
	"slices"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/apperr"
	"quotedesk/config"
	"quotedesk/services"
	"quotedesk/templates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleProposalPDF downloads one proposal as a PDF.
func HandleProposalPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildProposalExportData(app, e.Request.PathValue("id"), config.Get().CurrencySymbol)
		if err != nil {
			return ErrorJSON(e, err)
		}

		pdfBytes, err := services.GenerateProposalPDF(data)
		if err != nil {
			return ErrorJSON(e, apperr.Internal("could not generate PDF", err))
		}

		RequestLogger(e).Info("proposal_pdf: generated",
			zap.String("number", data.Proposal.Number),
			zap.Int("bytes", len(pdfBytes)))

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.Proposal.Number))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}

// HandleProposalPrint renders a print-friendly HTML page for one proposal.
func HandleProposalPrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildProposalExportData(app, e.Request.PathValue("id"), config.Get().CurrencySymbol)
		if err != nil {
			return ErrorJSON(e, err)
		}
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.ProposalPrint(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleProposalsExcel downloads the proposal list as a workbook, optionally
// restricted by ?status=.
func HandleProposalsExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		status := e.Request.URL.Query().Get("status")
		if status != "" && !slices.Contains(services.ProposalStatuses, status) {
			return ErrorJSON(e, apperr.Newf(apperr.TypeInput, "invalid status %q", status))
		}

		proposals, err := services.ListProposals(app, services.ProposalFilter{Status: status})
		if err != nil {
			return ErrorJSON(e, err)
		}

		xlsx, err := services.GenerateProposalsExcel(proposals, config.Get().CurrencySymbol)
		if err != nil {
			return ErrorJSON(e, apperr.Internal("could not generate workbook", err))
		}

		filename := "proposals.xlsx"
		if status != "" {
			filename = fmt.Sprintf("proposals-%s.xlsx", status)
		}
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(xlsx)
		return err
	}
}
