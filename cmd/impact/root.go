package main

import (
	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/config"
	"github.com/rpggio/impact/internal/logging"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "impact",
		Short: "Log work achievements and turn them into review material",
		Long: `impact keeps a local log of projects, fixes and automations with their
measurable outcomes, and produces KPIs, summary bullets and CSV, Markdown or
PDF exports from it.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	addSubcommands(rootCmd)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("db", "", "Database path (default from config, impact.db)")
	cmd.PersistentFlags().Bool("seed", true, "Store the sample records when the database is empty")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

func addSubcommands(root *cobra.Command) {
	root.AddCommand(
		NewListCmd(),
		NewShowCmd(),
		NewKPIsCmd(),
		NewExportCmd(),
		NewSaveCmd(),
		NewImportCmd(),
		NewSuggestCmd(),
		NewStarCmd(),
		NewDuplicateCmd(),
		NewDeleteCmd(),
		NewSummaryCmd(),
		NewActivityCmd(),
	)
}

type appRunner func(cmd *cobra.Command, args []string, a *app.App) error

// withApp opens the store for the duration of one command.
func withApp(run appRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a)
	}
}

func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") {
		cfg.DB.Path, _ = cmd.Flags().GetString("db")
	}
	if cmd.Flags().Changed("seed") {
		cfg.DB.SeedSamples, _ = cmd.Flags().GetBool("seed")
	}

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	return app.Open(cmd.Context(), cfg.DB, logger)
}

func jsonOutput(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}
