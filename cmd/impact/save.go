package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save -f form.yaml",
		Short: "Create or replace a record from a form file",
		Long: `Save a record from a YAML form file ("-" reads stdin). The file holds the
editor values under "form", plus optional "impact", "evidence" and "feedback"
lists. Set "id" to replace an existing record; it is replaced whole.

  id: sample-1
  form:
    projectName: Release checklist bot
    category: Automation
    status: Completed
    problemWhat: Release steps were run by hand
    languages: Go, Bash
    hoursSavedPerMonth: "10"
  impact:
    - metric: Error rate
      before: 5%
      after: 0%
      improvement: Reduced by 100%`,
		Args: cobra.NoArgs,
		RunE: withApp(runSave),
	}
	cmd.Flags().StringP("file", "f", "", "Form file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSave(cmd *cobra.Command, _ []string, a *app.App) error {
	req, err := readFormFile(cmd)
	if err != nil {
		return err
	}
	rec, err := a.Records.SaveForm(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	if jsonOutput(cmd) {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n%s\n", rec.ID, rec.BulletText())
	return nil
}

func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest -f form.yaml",
		Short: "Suggest a summary bullet for a form file",
		Long:  `Print the bullet that save would use when the form has no finalBullet. Nothing is stored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readFormFile(cmd)
			if err != nil {
				return err
			}
			bullet := record.SynthesizeBullet(req.Form, req.Impact)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"bullet": bullet})
			}
			fmt.Fprintln(cmd.OutOrStdout(), bullet)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Form file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import -f records.json",
		Short: "Store records from a JSON array",
		Long: `Import a JSON array of complete records, such as the output of
"impact list --json" or a browser export. Records with a known id replace the
stored one; the others are created.`,
		Args: cobra.NoArgs,
		RunE: withApp(runImport),
	}
	cmd.Flags().StringP("file", "f", "", "Records file (JSON array)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runImport(cmd *cobra.Command, _ []string, a *app.App) error {
	data, err := readInput(cmd)
	if err != nil {
		return err
	}

	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapped listOutput
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil || wrapped.Records == nil {
			return fmt.Errorf("parse records: %w", err)
		}
		records = wrapped.Records
	}

	// Oldest first so the file's first record ends up first in store order.
	for i := len(records) - 1; i >= 0; i-- {
		if _, err := a.Records.Save(cmd.Context(), records[i]); err != nil {
			return fmt.Errorf("import %q: %w", records[i].ProjectName, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d record(s)\n", len(records))
	return nil
}

func readFormFile(cmd *cobra.Command) (record.SaveFormRequest, error) {
	data, err := readInput(cmd)
	if err != nil {
		return record.SaveFormRequest{}, err
	}
	var req record.SaveFormRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return record.SaveFormRequest{}, fmt.Errorf("parse form file: %w", err)
	}
	return req, nil
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
