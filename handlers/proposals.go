package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"quotedesk/apperr"
	"quotedesk/config"
	"quotedesk/services"
)

// now is swapped in tests that need a fixed proposal number.
var now = time.Now

// HandleProposalList lists proposals newest first with optional ?status=,
// ?clientName= (case-insensitive substring), ?limit= and ?skip=.
func HandleProposalList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		filter := services.ProposalFilter{
			Status:     q.Get("status"),
			ClientName: q.Get("clientName"),
			Limit:      config.Get().DefaultPageSize,
		}
		if filter.Status != "" && !slices.Contains(services.ProposalStatuses, filter.Status) {
			return ErrorJSON(e, apperr.Newf(apperr.TypeInput, "invalid status %q", filter.Status))
		}

		var err error
		if raw := q.Get("limit"); raw != "" {
			if filter.Limit, err = nonNegativeInt("limit", raw); err != nil {
				return ErrorJSON(e, err)
			}
		}
		if raw := q.Get("skip"); raw != "" {
			if filter.Skip, err = nonNegativeInt("skip", raw); err != nil {
				return ErrorJSON(e, err)
			}
		}

		proposals, err := services.ListProposals(app, filter)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, proposals)
	}
}

// HandleProposalCreate resolves, prices and stores a new proposal.
func HandleProposalCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in services.ProposalInput
		if err := readJSON(e, &in); err != nil {
			return ErrorJSON(e, err)
		}
		p, err := services.CreateProposal(app, in, now())
		if err != nil {
			return ErrorJSON(e, err)
		}
		RequestLogger(e).Info("proposal_create: created",
			zap.String("id", p.ID),
			zap.String("number", p.Number))
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProposalGet returns one proposal.
func HandleProposalGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := services.GetProposal(app, e.Request.PathValue("id"))
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProposalUpdate applies a partial update, re-pricing when a pricing
// input is present in the body.
func HandleProposalUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var patch services.ProposalPatch
		if err := readJSON(e, &patch); err != nil {
			return ErrorJSON(e, err)
		}
		p, err := services.UpdateProposal(app, e.Request.PathValue("id"), patch)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProposalDelete removes a proposal.
func HandleProposalDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := services.DeleteProposal(app, e.Request.PathValue("id")); err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": "Proposal deleted"})
	}
}

// HandleProposalDuplicate copies a proposal as a new draft.
func HandleProposalDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := services.DuplicateProposal(app, e.Request.PathValue("id"), now())
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, p)
	}
}

// HandleProposalPreview prices ad-hoc input without storing it.
func HandleProposalPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in services.PreviewInput
		if err := readJSON(e, &in); err != nil {
			return ErrorJSON(e, err)
		}
		b, err := services.PreviewProposal(app, in)
		if err != nil {
			return ErrorJSON(e, err)
		}
		return e.JSON(http.StatusOK, b)
	}
}

func nonNegativeInt(name, raw string) (int, error) {
	n, err := cast.ToIntE(raw)
	if err != nil || n < 0 {
		return 0, apperr.Newf(apperr.TypeInput, "invalid %s %q", name, raw)
	}
	return n, nil
}
