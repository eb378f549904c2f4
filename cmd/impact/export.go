package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/export"
	"github.com/spf13/cobra"
)

var errTerminalPDF = errors.New("refusing to write PDF to a terminal; use -o or redirect stdout")

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <csv|markdown|pdf>",
		Short: "Export the current view",
		Long: `Export the records matching the search and filters. With --id a single
record is exported as PDF. Output goes to stdout unless -o names a file, or a
directory to write the default file name into.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runExport),
	}
	addQueryFlags(cmd)
	cmd.Flags().String("id", "", "Export one record (pdf only)")
	cmd.Flags().StringP("output", "o", "", "Write to this file or directory")
	return cmd
}

func runExport(cmd *cobra.Command, args []string, a *app.App) error {
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return err
	}

	var (
		doc   *export.Document
		count int
	)
	if id, _ := cmd.Flags().GetString("id"); id != "" {
		if format != export.FormatPDF {
			return fmt.Errorf("single record export is only available as pdf")
		}
		rec, err := a.Records.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("export %s: %w", id, err)
		}
		if doc, err = export.RenderRecordPDF(*rec); err != nil {
			return err
		}
		count = 1
	} else {
		view, err := a.Records.Query(cmd.Context(), queryFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("export records: %w", err)
		}
		if doc, err = export.Render(format, view); err != nil {
			return err
		}
		count = len(view)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		if format == export.FormatPDF && isTerminal(cmd.OutOrStdout()) {
			return errTerminalPDF
		}
		if _, err := cmd.OutOrStdout().Write(doc.Data); err != nil {
			return err
		}
	} else {
		path := output
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			path = filepath.Join(output, doc.Filename)
		}
		if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d record(s) to %s\n", count, path)
	}

	a.Activity.LogExport(cmd.Context(), string(format), count)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
