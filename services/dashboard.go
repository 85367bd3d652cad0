package services

import (
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"

	"quotedesk/apperr"
	"quotedesk/collections"
)

// DashboardStats are the headline counters of the home screen.
type DashboardStats struct {
	ActiveServices    int64            `json:"activeServices"`
	TotalProposals    int64            `json:"totalProposals"`
	ProposalsByStatus map[string]int64 `json:"proposalsByStatus"`
	ApprovedTotal     float64          `json:"approvedTotal"`
}

type statusCount struct {
	Status string `db:"status"`
	Total  int64  `db:"total"`
}

// BuildDashboard aggregates catalog and proposal counters.
func BuildDashboard(app *pocketbase.PocketBase) (DashboardStats, error) {
	stats := DashboardStats{ProposalsByStatus: make(map[string]int64, len(ProposalStatuses))}
	for _, s := range ProposalStatuses {
		stats.ProposalsByStatus[s] = 0
	}

	active, err := app.CountRecords(collections.Services, dbx.HashExp{"active": true})
	if err != nil {
		return stats, apperr.Internal("could not count services", err)
	}
	stats.ActiveServices = active

	var rows []statusCount
	err = app.DB().
		Select("status", "COUNT(*) AS total").
		From(collections.Proposals).
		GroupBy("status").
		All(&rows)
	if err != nil {
		return stats, apperr.Internal("could not count proposals", err)
	}
	for _, row := range rows {
		stats.ProposalsByStatus[row.Status] = row.Total
		stats.TotalProposals += row.Total
	}

	var sum struct {
		Total float64 `db:"total"`
	}
	err = app.DB().
		Select("COALESCE(SUM(grand_total), 0) AS total").
		From(collections.Proposals).
		Where(dbx.HashExp{"status": StatusApproved}).
		One(&sum)
	if err != nil {
		return stats, apperr.Internal("could not sum approved proposals", err)
	}
	stats.ApprovedTotal = sum.Total

	return stats, nil
}
