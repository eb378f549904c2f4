package main

import (
	"fmt"

	"github.com/rpggio/impact/internal/app"
	"github.com/spf13/cobra"
)

func NewStarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "star <id>",
		Short: "Star or unstar a record",
		Long:  `Toggle the starred flag. Starred records make up the appraisal summary.`,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			rec, err := a.Records.ToggleStar(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("star %s: %w", args[0], err)
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			state := "unstarred"
			if rec.Starred {
				state = "starred"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, rec.ID)
			return nil
		}),
	}
}

func NewDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate <id>",
		Aliases: []string{"dup"},
		Short:   "Copy a record",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			rec, err := a.Records.Duplicate(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("duplicate %s: %w", args[0], err)
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %q\n", rec.ID, rec.ProjectName)
			return nil
		}),
	}
}

func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			if err := a.Records.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		}),
	}
}

func NewSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the bullets of all starred records",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			summary, err := a.Records.AppraisalSummary(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"summary": summary})
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		}),
	}
}
