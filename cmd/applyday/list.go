package main

import (
	"fmt"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications with search, filters and sorting",
	Long: `Fetch every application from the backend and show the filtered, sorted view.
Filters from --filters-file are applied first; any filter flag overrides the preset field.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFilters filterFlags
	listJSON    bool
)

func init() {
	listFilters.register(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the view as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	filters, err := listFilters.build(cmd)
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

	view := applications.Process(all, filters)
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"applications": view,
			"count":        len(view),
			"total":        len(all),
			"filters":      filters,
		})
	}

	newPrinter(cmd).PrintApplications(view, len(all))
	return nil
}
