package main

import (
	"fmt"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the filter options for the loaded applications",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

var optionsJSON bool

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Print options as JSON")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	all, err := client.ListApplications(cmd.Context(), backend.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	opts := applications.GetFilterOptions(all)
	if optionsJSON {
		return writeJSON(cmd.OutOrStdout(), opts)
	}
	newPrinter(cmd).PrintFilterOptions(opts)
	return nil
}
