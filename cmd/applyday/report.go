package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/applyday/internal/rendering"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List, show, create or delete analytics reports",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports",
	Args:  cobra.NoArgs,
	RunE:  runReportList,
}

var reportShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a report, optionally writing it as an HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportShow,
}

var reportCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Run analytics over selected job descriptions or a date window",
	Long: `Create a report over the structured job descriptions named by --jobs, or over
every job description created between --start and --end.`,
	Args: cobra.NoArgs,
	RunE: runReportCreate,
}

var reportDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportDelete,
}

var (
	reportHTMLOut  string
	reportTemplate string
	reportJSON     bool

	reportJobs      []int64
	reportStart     string
	reportEnd       string
	reportResumeID  int64
	reportLanguages []string
)

func init() {
	reportShowCmd.Flags().StringVar(&reportHTMLOut, "html", "", "Write the rendered report page to this path")
	reportShowCmd.Flags().StringVar(&reportTemplate, "template", "", "Custom html/template file for --html")
	reportShowCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the raw report as JSON")

	reportCreateCmd.Flags().Int64SliceVar(&reportJobs, "jobs", nil, "Structured job description IDs")
	reportCreateCmd.Flags().StringVar(&reportStart, "start", "", "Window start (ISO-8601)")
	reportCreateCmd.Flags().StringVar(&reportEnd, "end", "", "Window end (ISO-8601)")
	reportCreateCmd.Flags().Int64Var(&reportResumeID, "resume", 0, "Resume ID to compare against")
	reportCreateCmd.Flags().StringSliceVar(&reportLanguages, "languages", nil, "Languages to include, e.g. en,de")

	reportCmd.AddCommand(reportListCmd, reportShowCmd, reportCreateCmd, reportDeleteCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	reports, err := client.ListReports(cmd.Context())
	if err != nil {
		return err
	}
	newPrinter(cmd).PrintReports(reports)
	return nil
}

func runReportShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	report, err := client.GetReport(cmd.Context(), id)
	if err != nil {
		return err
	}

	if reportHTMLOut != "" {
		return writeReportHTML(cmd, report)
	}
	if reportJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	newPrinter(cmd).PrintReport(report)
	return nil
}

func writeReportHTML(cmd *cobra.Command, report *types.Report) error {
	var (
		page string
		err  error
	)
	if reportTemplate != "" {
		page, err = rendering.RenderReportHTMLFrom(report, reportTemplate)
	} else {
		page, err = rendering.RenderReportHTML(report)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(reportHTMLOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(reportHTMLOut, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write report page: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote report %d to %s\n", report.ID, reportHTMLOut)
	return nil
}

func runReportCreate(cmd *cobra.Command, _ []string) error {
	req := types.ReportRequest{
		JobIDs:    reportJobs,
		StartAt:   reportStart,
		EndAt:     reportEnd,
		Languages: reportLanguages,
	}
	if cmd.Flags().Changed("resume") {
		id := reportResumeID
		req.ResumeID = &id
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid report request: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	report, err := client.CreateReport(cmd.Context(), req)
	if err != nil {
		return err
	}
	newPrinter(cmd).PrintReport(report)
	return nil
}

func runReportDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.DeleteReport(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %d\n", id)
	return nil
}
