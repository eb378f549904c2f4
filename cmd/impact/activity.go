package main

import (
	"fmt"

	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/spf13/cobra"
)

func NewActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent changes and exports",
		Args:  cobra.NoArgs,
		RunE:  withApp(runActivity),
	}
	cmd.Flags().Int("limit", activity.DefaultListLimit, "Maximum number of entries")
	cmd.Flags().String("record", "", "Only entries for this record ID")
	cmd.Flags().String("type", "", "Only entries of this type (e.g. record_created)")
	return cmd
}

func runActivity(cmd *cobra.Command, _ []string, a *app.App) error {
	opts := activity.ListActivityOptions{}
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	if id, _ := cmd.Flags().GetString("record"); id != "" {
		opts.RecordID = &id
	}
	if typ, _ := cmd.Flags().GetString("type"); typ != "" {
		t := activity.ActivityType(typ)
		opts.ActivityType = &t
	}

	entries, err := a.Activity.GetRecentActivity(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("list activity: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, entries)
	}
	s := newStyles(out)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(e.ActivityType),
			e.Summary,
		})
	}
	fmt.Fprint(out, s.table([]string{"WHEN", "TYPE", "SUMMARY"}, rows))
	return nil
}
