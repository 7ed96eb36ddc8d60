package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/jonathan/applyday/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered application view to an Excel workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFilters filterFlags
	exportOut     string
	exportTitle   string
)

func init() {
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output .xlsx path (default <export_dir>/applications-<timestamp>.xlsx)")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Workbook summary title")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	filters, err := exportFilters.build(cmd)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	all, err := client.ListApplications(cmd.Context(), backend.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	now := time.Now()
	path := exportOut
	if path == "" {
		path = filepath.Join(settings.ExportDir, fmt.Sprintf("applications-%s.xlsx", now.Format("20060102-150405")))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	view := applications.Process(all, filters)
	written, err := export.ExportToExcel(view, &export.Options{
		Title:       exportTitle,
		Filters:     filters,
		GeneratedAt: now,
	}, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d applications to %s\n", len(view), len(all), written)
	return nil
}
