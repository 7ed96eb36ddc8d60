package applications

import (
	"fmt"
	"slices"
	"strings"
)

// InvalidFilterError reports a filter or sort value outside the known set.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// Validate checks every enumerated field of f. Processing never needs this;
// it is for filters that come from users.
func (f Filters) Validate() error {
	for _, s := range f.Statuses {
		if !s.IsValid() {
			return &InvalidFilterError{Field: "statuses", Value: string(s)}
		}
	}
	for _, l := range f.LocationTypes {
		if !slices.Contains([]LocationType{LocationRemote, LocationHybrid, LocationOnsite}, l) {
			return &InvalidFilterError{Field: "locationTypes", Value: string(l)}
		}
	}
	for _, r := range f.RoleTypes {
		if !slices.Contains([]RoleType{RoleFullTime, RolePartTime, RoleInternship}, r) {
			return &InvalidFilterError{Field: "roleTypes", Value: string(r)}
		}
	}
	if f.SortBy != "" && !slices.Contains([]SortBy{SortByDate, SortByCompany, SortByStatus, SortByTitle}, f.SortBy) {
		return &InvalidFilterError{Field: "sortBy", Value: string(f.SortBy)}
	}
	if f.SortOrder != "" && f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		return &InvalidFilterError{Field: "sortOrder", Value: string(f.SortOrder)}
	}
	return nil
}

// SplitList splits a comma-separated value, trimming blanks. It returns nil
// for an empty input.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseList converts raw strings to a typed enum slice, lowercasing each value.
func ParseList[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(strings.ToLower(strings.TrimSpace(v))))
	}
	return out
}
