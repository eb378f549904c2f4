package main

import (
	"fmt"

	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records in the current view",
		Long:    `List records matching the search and filters, in the chosen sort order.`,
		Args:    cobra.NoArgs,
		RunE:    withApp(runList),
	}
	addQueryFlags(cmd)
	cmd.Flags().Int("limit", 0, "Show at most this many records (KPIs still cover the whole view)")
	return cmd
}

type listOutput struct {
	Records []record.Record `json:"records"`
	Total   int             `json:"total"`
	KPIs    record.KPIs     `json:"kpis"`
}

func runList(cmd *cobra.Command, _ []string, a *app.App) error {
	view, err := a.Records.Query(cmd.Context(), queryFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	shown := view
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(view) {
		shown = view[:limit]
	}

	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, listOutput{Records: shown, Total: len(view), KPIs: record.ComputeKPIs(view)})
	}

	if len(view) == 0 {
		fmt.Fprintln(out, "No records match.")
		return nil
	}
	s := newStyles(out)
	fmt.Fprint(out, s.table([]string{"", "ID", "PROJECT", "CATEGORY", "STATUS", "SCORE"}, s.recordRows(shown)))
	if len(shown) < len(view) {
		fmt.Fprintln(out, s.dim.Render(fmt.Sprintf("%d of %d records shown", len(shown), len(view))))
	}
	return nil
}
