package applications

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/applyday/internal/types"
)

// SortBy names a sort key.
type SortBy string

const (
	SortByDate    SortBy = "date"
	SortByCompany SortBy = "company"
	SortByStatus  SortBy = "status"
	SortByTitle   SortBy = "title"
)

// SortOrder is the direction of a sort. Anything other than SortAsc sorts descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var statusPriority = map[types.Status]int{
	types.StatusOffered:     5,
	types.StatusInterviewed: 4,
	types.StatusApplied:     3,
	types.StatusPrepared:    2,
	types.StatusRejected:    1,
}

// StatusPriority ranks a status for sorting; unknown statuses rank 0.
func StatusPriority(s types.Status) int {
	return statusPriority[s]
}

// AppliedAt returns the application date, falling back to the creation timestamp.
// Missing or unparseable values yield the zero time, which sorts as the oldest.
func AppliedAt(app types.Application) time.Time {
	raw := app.ApplicationDate
	if raw == "" {
		raw = app.CreatedAt
	}
	if raw == "" {
		return time.Time{}
	}
	t, err := types.ParseISODate(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Sort returns a sorted copy of apps. An unknown key sorts by date. The sort is
// stable, so applications with equal keys keep their input order.
func Sort(apps []types.Application, sortBy SortBy, order SortOrder) []types.Application {
	sorted := slices.Clone(apps)
	if sorted == nil {
		sorted = []types.Application{}
	}

	compare := comparator(sortBy)
	if order == SortAsc {
		slices.SortStableFunc(sorted, compare)
	} else {
		slices.SortStableFunc(sorted, func(a, b types.Application) int { return compare(b, a) })
	}
	return sorted
}

func comparator(sortBy SortBy) func(a, b types.Application) int {
	switch sortBy {
	case SortByCompany:
		return func(a, b types.Application) int {
			return cmp.Compare(strings.ToLower(a.Company), strings.ToLower(b.Company))
		}
	case SortByTitle:
		return func(a, b types.Application) int {
			return cmp.Compare(strings.ToLower(a.JobTitle), strings.ToLower(b.JobTitle))
		}
	case SortByStatus:
		return func(a, b types.Application) int {
			return cmp.Compare(StatusPriority(a.Status), StatusPriority(b.Status))
		}
	default:
		return func(a, b types.Application) int {
			return AppliedAt(a).Compare(AppliedAt(b))
		}
	}
}
