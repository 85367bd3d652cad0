package services

import (
	"strings"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/apperr"
	"quotedesk/collections"
	"quotedesk/logging"
)

// CopyPrefix is prepended to the client name of a duplicated proposal.
const CopyPrefix = "COPY - "

// ProposalFilter narrows ListProposals.
type ProposalFilter struct {
	Status     string
	ClientName string // case-insensitive substring
	Limit      int
	Skip       int
}

// ListProposals returns proposals newest first. ClientName matches any
// part of the name regardless of case; % and _ in it match literally.
func ListProposals(app *pocketbase.PocketBase, f ProposalFilter) ([]Proposal, error) {
	query := app.RecordQuery(collections.Proposals).
		OrderBy("created DESC", "id DESC")
	if f.Status != "" {
		query.AndWhere(dbx.HashExp{"status": f.Status})
	}
	if f.ClientName != "" {
		pattern := "%" + escapeLike(collections.ClientSearchKey(f.ClientName)) + "%"
		query.AndWhere(dbx.NewExp(`client_name_search LIKE {:clientName} ESCAPE '\'`,
			dbx.Params{"clientName": pattern}))
	}
	if f.Limit > 0 {
		query.Limit(int64(f.Limit))
	}
	if f.Skip > 0 {
		query.Offset(int64(f.Skip))
	}

	records := []*core.Record{}
	if err := query.All(&records); err != nil {
		return nil, apperr.Internal("could not list proposals", err)
	}

	proposals := make([]Proposal, 0, len(records))
	for _, r := range records {
		proposals = append(proposals, ProposalFromRecord(r))
	}
	return proposals, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetProposal returns one proposal.
func GetProposal(app *pocketbase.PocketBase, id string) (Proposal, error) {
	record, err := findRecord(app, collections.Proposals, "proposal", id)
	if err != nil {
		return Proposal{}, err
	}
	return ProposalFromRecord(record), nil
}

// ResolveLineItems looks every input up in the catalog and resolves its unit
// price. An unknown service id is an INVALID_REFERENCE error.
func ResolveLineItems(app *pocketbase.PocketBase, inputs []LineItemInput) ([]LineItem, error) {
	items := make([]LineItem, 0, len(inputs))
	for _, in := range inputs {
		entry, err := GetService(app, in.ServiceID)
		if err != nil {
			if apperr.IsType(err, apperr.TypeNotFound) {
				return nil, apperr.InvalidReference("service", in.ServiceID)
			}
			return nil, err
		}

		mode := in.Mode()
		items = append(items, LineItem{
			ServiceID:       entry.ID,
			ServiceName:     entry.Name,
			ServiceCategory: entry.Category,
			AttendanceMode:  mode,
			Quantity:        in.Qty(),
			UnitPrice:       ResolveUnitPrice(entry, mode),
			UrgencyApplied:  in.UrgencyApplied,
			Notes:           in.Notes,
		})
	}
	return items, nil
}

// Reprice recomputes the breakdown of p from its stored lines, fills the
// per-line subtotal and urgency amounts and records the rates used.
func Reprice(p *Proposal, cfg Configuration) {
	b := CalcProposal(p.LineInputs(), cfg, p.Extras())
	for i := range p.Items {
		p.Items[i].Subtotal = b.Lines[i].Subtotal
		p.Items[i].UrgencyAmount = b.Lines[i].UrgencyAmount
	}
	p.Breakdown = b
	p.UrgencyPercent = cfg.UrgencyPercent
	p.TaxPercent = cfg.TaxPercent
}

// CreateProposal resolves, prices and stores a new draft proposal.
func CreateProposal(app *pocketbase.PocketBase, in ProposalInput, now time.Time) (Proposal, error) {
	items, err := ResolveLineItems(app, in.Items)
	if err != nil {
		return Proposal{}, err
	}
	cfg, err := GetOrCreateConfiguration(app)
	if err != nil {
		return Proposal{}, err
	}

	discountKind := in.DiscountKind
	if discountKind == "" {
		discountKind = DiscountFixed
	}

	p := Proposal{
		Number:         GenerateProposalNumber(now),
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		ClientAddress:  in.ClientAddress,
		Items:          items,
		TravelKm:       in.TravelKm,
		OnCallHours:    in.OnCallHours,
		GlobalUrgency:  in.GlobalUrgency,
		DiscountKind:   discountKind,
		DiscountAmount: in.DiscountAmount,
		Notes:          in.Notes,
		Status:         StatusDraft,
	}
	Reprice(&p, cfg)

	record, err := newRecord(app, collections.Proposals)
	if err != nil {
		return Proposal{}, err
	}
	record.Set("number", p.Number)
	record.Set("status", p.Status)
	setProposalFields(record, &p)

	if err := app.Save(record); err != nil {
		return Proposal{}, apperr.Internal("could not save proposal", err)
	}
	logging.Info("proposals: created",
		zap.String("id", record.Id),
		zap.String("number", p.Number),
		zap.Float64("grand_total", p.GrandTotal))
	return ProposalFromRecord(record), nil
}

// UpdateProposal applies a partial update. When the patch touches any
// pricing input the whole proposal is re-priced with the current
// configuration; otherwise the stored breakdown is left as is.
func UpdateProposal(app *pocketbase.PocketBase, id string, patch ProposalPatch) (Proposal, error) {
	record, err := findRecord(app, collections.Proposals, "proposal", id)
	if err != nil {
		return Proposal{}, err
	}
	p := ProposalFromRecord(record)

	applyIf(&p.ClientName, patch.ClientName)
	applyIf(&p.ClientEmail, patch.ClientEmail)
	applyIf(&p.ClientPhone, patch.ClientPhone)
	applyIf(&p.ClientAddress, patch.ClientAddress)
	applyIf(&p.TravelKm, patch.TravelKm)
	applyIf(&p.OnCallHours, patch.OnCallHours)
	applyIf(&p.GlobalUrgency, patch.GlobalUrgency)
	applyIf(&p.DiscountKind, patch.DiscountKind)
	applyIf(&p.DiscountAmount, patch.DiscountAmount)
	applyIf(&p.Notes, patch.Notes)
	applyIf(&p.Status, patch.Status)

	if patch.Items != nil {
		items, err := ResolveLineItems(app, *patch.Items)
		if err != nil {
			return Proposal{}, err
		}
		p.Items = items
	}

	if patch.TouchesPricing() {
		cfg, err := GetOrCreateConfiguration(app)
		if err != nil {
			return Proposal{}, err
		}
		Reprice(&p, cfg)
		setProposalFields(record, &p)
	} else {
		setClientFields(record, &p)
	}
	record.Set("status", p.Status)

	if err := app.Save(record); err != nil {
		return Proposal{}, apperr.Internal("could not save proposal", err)
	}
	return ProposalFromRecord(record), nil
}

// DeleteProposal removes a proposal permanently.
func DeleteProposal(app *pocketbase.PocketBase, id string) error {
	record, err := findRecord(app, collections.Proposals, "proposal", id)
	if err != nil {
		return err
	}
	if err := app.Delete(record); err != nil {
		return apperr.Internal("could not delete proposal", err)
	}
	logging.Info("proposals: deleted", zap.String("id", id), zap.String("number", record.GetString("number")))
	return nil
}

// DuplicateProposal copies a proposal under a new number as a draft. The
// breakdown is copied as stored, not re-priced.
func DuplicateProposal(app *pocketbase.PocketBase, id string, now time.Time) (Proposal, error) {
	source, err := findRecord(app, collections.Proposals, "proposal", id)
	if err != nil {
		return Proposal{}, err
	}
	p := ProposalFromRecord(source)
	p.ClientName = CopyPrefix + p.ClientName

	record, err := newRecord(app, collections.Proposals)
	if err != nil {
		return Proposal{}, err
	}
	number := GenerateProposalNumber(now)
	if number == p.Number {
		// A copy never repeats its source's number.
		number = GenerateProposalNumber(now.Add(time.Second))
	}
	record.Set("number", number)
	record.Set("status", StatusDraft)
	setProposalFields(record, &p)

	if err := app.Save(record); err != nil {
		return Proposal{}, apperr.Internal("could not save duplicated proposal", err)
	}
	logging.Info("proposals: duplicated", zap.String("source", id), zap.String("id", record.Id))
	return ProposalFromRecord(record), nil
}

// PreviewProposal prices ad-hoc input against the current configuration
// without storing anything.
func PreviewProposal(app *pocketbase.PocketBase, in PreviewInput) (Breakdown, error) {
	cfg, err := GetOrCreateConfiguration(app)
	if err != nil {
		return Breakdown{}, err
	}

	lines := make([]LineInput, len(in.Items))
	for i, item := range in.Items {
		lines[i] = item.LineInput()
	}
	kind := in.DiscountKind
	if kind == "" {
		kind = DiscountFixed
	}
	return CalcProposal(lines, cfg, Extras{
		TravelKm:       in.TravelKm,
		OnCallHours:    in.OnCallHours,
		GlobalUrgency:  in.GlobalUrgency,
		DiscountKind:   kind,
		DiscountAmount: in.DiscountAmount,
	}), nil
}

// RecalculateProposals re-prices stored proposals with the current
// configuration, keeping their stored unit prices. Only drafts are touched
// unless all is set. It returns the number of proposals saved.
func RecalculateProposals(app *pocketbase.PocketBase, all bool) (int, error) {
	cfg, err := GetOrCreateConfiguration(app)
	if err != nil {
		return 0, err
	}

	filter := "status = {:status}"
	params := dbx.Params{"status": StatusDraft}
	if all {
		filter, params = "1=1", nil
	}
	records, err := app.FindRecordsByFilter(collections.Proposals, filter, "created", 0, 0, params)
	if err != nil {
		return 0, apperr.Internal("could not list proposals", err)
	}

	saved := 0
	for _, record := range records {
		p := ProposalFromRecord(record)
		before := p.GrandTotal
		Reprice(&p, cfg)
		setProposalFields(record, &p)
		if err := app.Save(record); err != nil {
			logging.Error("recalculate: could not save proposal", zap.String("id", record.Id), zap.Error(err))
			continue
		}
		saved++
		if before != p.GrandTotal {
			logging.Info("recalculate: total changed",
				zap.String("number", p.Number),
				zap.Float64("before", before),
				zap.Float64("after", p.GrandTotal))
		}
	}
	return saved, nil
}

// applyIf assigns *v to *dst when v is not nil.
func applyIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
