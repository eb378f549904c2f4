package main

import (
	"fmt"

	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/spf13/cobra"
)

func NewKPIsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Total the impact of the current view",
		Args:  cobra.NoArgs,
		RunE:  withApp(runKPIs),
	}
	addQueryFlags(cmd)
	return cmd
}

type kpisOutput struct {
	KPIs    record.KPIs `json:"kpis"`
	Records int         `json:"records"`
}

func runKPIs(cmd *cobra.Command, _ []string, a *app.App) error {
	view, err := a.Records.Query(cmd.Context(), queryFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("compute kpis: %w", err)
	}
	kpis := record.ComputeKPIs(view)

	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, kpisOutput{KPIs: kpis, Records: len(view)})
	}
	fmt.Fprint(out, newStyles(out).kpis(kpis, len(view)))
	return nil
}
