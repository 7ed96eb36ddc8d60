package applications

import (
	"slices"

	"github.com/jonathan/applyday/internal/types"
)

// Filters is the full set of view parameters. The JSON form uses the same
// camelCase keys as the browser UI so saved presets can be shared.
type Filters struct {
	SearchTerm    string         `json:"searchTerm,omitempty"`
	Statuses      []types.Status `json:"statuses,omitempty"`
	LocationTypes []LocationType `json:"locationTypes,omitempty"`
	RoleTypes     []RoleType     `json:"roleTypes,omitempty"`
	SortBy        SortBy         `json:"sortBy,omitempty"`
	SortOrder     SortOrder      `json:"sortOrder,omitempty"`
}

// IsZero reports whether no filter or sort is set.
func (f Filters) IsZero() bool {
	return f.SearchTerm == "" && len(f.Statuses) == 0 && len(f.LocationTypes) == 0 &&
		len(f.RoleTypes) == 0 && f.SortBy == "" && f.SortOrder == ""
}

// Process applies search, status, location and role filters in that order, then
// sorts if SortBy is set. Stages whose filter is empty are skipped; without a
// sort key the filtered order is preserved. The result never aliases apps.
func Process(apps []types.Application, filters Filters) []types.Application {
	result := slices.Clone(apps)
	if result == nil {
		result = []types.Application{}
	}

	if filters.SearchTerm != "" {
		result = Search(result, filters.SearchTerm)
	}
	if len(filters.Statuses) > 0 {
		result = FilterByStatus(result, filters.Statuses)
	}
	if len(filters.LocationTypes) > 0 {
		result = FilterByLocationType(result, filters.LocationTypes)
	}
	if len(filters.RoleTypes) > 0 {
		result = FilterByRoleType(result, filters.RoleTypes)
	}
	if filters.SortBy != "" {
		result = Sort(result, filters.SortBy, filters.SortOrder)
	}

	return result
}
