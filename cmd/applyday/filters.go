package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/schemas"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
)

// filterFlags holds the view flags shared by list and export.
type filterFlags struct {
	search      string
	statuses    []string
	locations   []string
	roles       []string
	sortBy      string
	sortOrder   string
	filtersFile string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Search company, title, status and notes")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "Statuses to include (prepared, applied, interviewed, offered, rejected)")
	cmd.Flags().StringSliceVar(&f.locations, "location", nil, "Location types to include (remote, hybrid, onsite)")
	cmd.Flags().StringSliceVar(&f.roles, "role", nil, "Role types to include (full-time, part-time, internship)")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "Sort key (date, company, status, title)")
	cmd.Flags().StringVar(&f.sortOrder, "sort-order", "", "Sort order (asc, desc)")
	cmd.Flags().StringVar(&f.filtersFile, "filters-file", "", "Saved filter preset (JSON, camelCase keys)")
}

// build starts from the preset, if any, and lets set flags override its fields.
func (f *filterFlags) build(cmd *cobra.Command) (applications.Filters, error) {
	var filters applications.Filters

	path := f.filtersFile
	if path == "" {
		path = settings.FiltersFile
	}
	if path != "" {
		preset, err := loadPreset(path)
		if err != nil {
			return filters, err
		}
		filters = preset
	}

	flags := cmd.Flags()
	if flags.Changed("search") {
		filters.SearchTerm = f.search
	}
	if flags.Changed("status") {
		filters.Statuses = applications.ParseList[types.Status](f.statuses)
	}
	if flags.Changed("location") {
		filters.LocationTypes = applications.ParseList[applications.LocationType](f.locations)
	}
	if flags.Changed("role") {
		filters.RoleTypes = applications.ParseList[applications.RoleType](f.roles)
	}
	if flags.Changed("sort-by") {
		filters.SortBy = applications.SortBy(strings.ToLower(f.sortBy))
	}
	if flags.Changed("sort-order") {
		filters.SortOrder = applications.SortOrder(strings.ToLower(f.sortOrder))
	}

	if err := filters.Validate(); err != nil {
		return filters, err
	}
	return filters, nil
}

// loadPreset reads a filters preset and validates it against the bundled schema.
func loadPreset(path string) (applications.Filters, error) {
	var filters applications.Filters

	data, err := os.ReadFile(path)
	if err != nil {
		return filters, fmt.Errorf("failed to read filters file: %w", err)
	}
	if err := schemas.ValidateFilters(data); err != nil {
		return filters, fmt.Errorf("invalid filters file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &filters); err != nil {
		return filters, fmt.Errorf("failed to parse filters file: %w", err)
	}
	return filters, nil
}
