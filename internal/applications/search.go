// Package applications filters, sorts and summarizes an in-memory collection
// of job applications for display.
//
// Every function is pure: inputs are never mutated and no function returns an
// error. Filters given an empty selection return their input slice unchanged.
package applications

import (
	"strings"

	"github.com/jonathan/applyday/internal/types"
)

// Search keeps applications whose company, job title, status or stage notes
// contain searchTerm, ignoring case. A blank term returns apps unchanged.
func Search(apps []types.Application, searchTerm string) []types.Application {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return apps
	}

	return keep(apps, func(app types.Application) bool {
		return containsFold(app.Company, term) ||
			containsFold(app.JobTitle, term) ||
			containsFold(string(app.Status), term) ||
			containsFold(app.StageNotes, term)
	})
}

// keep returns a new, non-nil slice of the elements matching pred in input order.
func keep(apps []types.Application, pred func(types.Application) bool) []types.Application {
	out := make([]types.Application, 0, len(apps))
	for _, app := range apps {
		if pred(app) {
			out = append(out, app)
		}
	}
	return out
}

// containsFold reports whether lowerNeedle occurs in s after lower-casing s.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
