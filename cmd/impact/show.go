package main

import (
	"fmt"

	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/export"
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record",
		Long:  `Print a record as Markdown, or as JSON with --json.`,
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runShow),
	}
}

func runShow(cmd *cobra.Command, args []string, a *app.App) error {
	rec, err := a.Records.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show %s: %w", args[0], err)
	}
	if jsonOutput(cmd) {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	_, err = cmd.OutOrStdout().Write(export.Markdown([]record.Record{*rec}))
	return err
}
