package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quotedesk/collections"
	"quotedesk/config"
	"quotedesk/handlers"
	"quotedesk/logging"
	"quotedesk/services"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	config.Set(cfg)

	app := pocketbase.NewWithConfig(pocketbase.Config{DefaultDataDir: cfg.DataDir})

	// Create collections, seed the catalog and clean up on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.MigrateSchema(app); err != nil {
			logging.Warn("schema migration failed", zap.Error(err))
		}
		if cfg.Seed {
			if err := collections.Seed(app); err != nil {
				logging.Warn("seed data failed", zap.Error(err))
			}
		}
		if err := collections.MigrateDuplicateConfiguration(app); err != nil {
			logging.Warn("configuration dedupe failed", zap.Error(err))
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		api := se.Router.Group("/api")
		api.BindFunc(handlers.RequestIDMiddleware())

		// ── Service catalog ──────────────────────────────────────
		api.GET("/services", handlers.HandleServiceList(app))
		api.POST("/services", handlers.HandleServiceCreate(app))
		api.GET("/services/{id}", handlers.HandleServiceGet(app))
		api.PUT("/services/{id}", handlers.HandleServiceUpdate(app))
		api.DELETE("/services/{id}", handlers.HandleServiceDelete(app))
		api.GET("/categories", handlers.HandleCategoryList(app))

		// ── Company profile ──────────────────────────────────────
		api.GET("/company", handlers.HandleCompanyGet(app))
		api.POST("/company", handlers.HandleCompanyUpsert(app))
		api.PUT("/company", handlers.HandleCompanyUpdate(app))

		// ── Pricing configuration ────────────────────────────────
		api.GET("/configuration", handlers.HandleConfigurationGet(app))
		api.POST("/configuration", handlers.HandleConfigurationSave(app))

		// ── Proposals (fixed paths before {id}) ──────────────────
		api.POST("/proposals/calculate-preview", handlers.HandleProposalPreview(app))
		api.GET("/proposals/export/excel", handlers.HandleProposalsExcel(app))

		api.GET("/proposals", handlers.HandleProposalList(app))
		api.POST("/proposals", handlers.HandleProposalCreate(app))
		api.GET("/proposals/{id}", handlers.HandleProposalGet(app))
		api.PUT("/proposals/{id}", handlers.HandleProposalUpdate(app))
		api.DELETE("/proposals/{id}", handlers.HandleProposalDelete(app))
		api.POST("/proposals/{id}/duplicate", handlers.HandleProposalDuplicate(app))
		api.GET("/proposals/{id}/pdf", handlers.HandleProposalPDF(app))
		api.GET("/proposals/{id}/print", handlers.HandleProposalPrint(app))

		api.GET("/dashboard", handlers.HandleDashboard(app))

		return se.Next()
	})

	app.RootCmd.AddCommand(recalculateCmd(app), exportCmd(app))

	if err := app.Start(); err != nil {
		logging.Fatal("app stopped", zap.Error(err))
	}
}

func recalculateCmd(app *pocketbase.PocketBase) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Re-price stored proposals with the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(app); err != nil {
				return err
			}
			n, err := services.RecalculateProposals(app, all)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recalculated %d proposal(s)\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include sent, approved and rejected proposals")
	return cmd
}

func exportCmd(app *pocketbase.PocketBase) *cobra.Command {
	var out, status string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the proposals spreadsheet to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !slices.Contains(services.ProposalStatuses, status) {
				return fmt.Errorf("invalid status %q", status)
			}
			if err := prepare(app); err != nil {
				return err
			}

			proposals, err := services.ListProposals(app, services.ProposalFilter{Status: status})
			if err != nil {
				return err
			}
			xlsx, err := services.GenerateProposalsExcel(proposals, config.Get().CurrencySymbol)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logging.Info("export: written", zap.String("file", out), zap.Int("proposals", len(proposals)))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "proposals.xlsx", "output file")
	cmd.Flags().StringVar(&status, "status", "", "only export proposals with this status")
	return cmd
}

// prepare makes sure the schema is current before a command touches data.
func prepare(app *pocketbase.PocketBase) error {
	collections.Setup(app)
	return collections.MigrateSchema(app)
}
