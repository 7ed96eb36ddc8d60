package applications

import (
	"slices"

	"github.com/jonathan/applyday/internal/types"
)

// SortOption is a selectable sort key with its display label.
type SortOption struct {
	Value SortBy `json:"value"`
	Label string `json:"label"`
}

// FilterOptions lists the choices a view can offer for the loaded collection.
type FilterOptions struct {
	Statuses      []types.Status `json:"statuses"`
	LocationTypes []LocationType `json:"locationTypes"`
	RoleTypes     []RoleType     `json:"roleTypes"`
	SortOptions   []SortOption   `json:"sortOptions"`
}

// GetFilterOptions returns the distinct non-empty statuses present in apps,
// sorted ascending, together with the fixed location, role and sort choices.
func GetFilterOptions(apps []types.Application) FilterOptions {
	statuses := make([]types.Status, 0)
	for _, app := range apps {
		if app.Status != "" && !slices.Contains(statuses, app.Status) {
			statuses = append(statuses, app.Status)
		}
	}
	slices.Sort(statuses)

	return FilterOptions{
		Statuses:      statuses,
		LocationTypes: []LocationType{LocationRemote, LocationHybrid, LocationOnsite},
		RoleTypes:     []RoleType{RoleFullTime, RolePartTime, RoleInternship},
		SortOptions: []SortOption{
			{Value: SortByDate, Label: "Application Date"},
			{Value: SortByCompany, Label: "Company Name"},
			{Value: SortByStatus, Label: "Status Priority"},
			{Value: SortByTitle, Label: "Job Title"},
		},
	}
}
