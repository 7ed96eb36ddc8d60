package applications

import (
	"slices"
	"strings"

	"github.com/jonathan/applyday/internal/types"
)

// LocationType is a heuristic work-location classification derived from text.
type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

// RoleType is a heuristic employment-type classification derived from text.
type RoleType string

const (
	RoleFullTime   RoleType = "full-time"
	RolePartTime   RoleType = "part-time"
	RoleInternship RoleType = "internship"
)

// FilterByStatus keeps applications whose status exactly matches one of statuses.
func FilterByStatus(apps []types.Application, statuses []types.Status) []types.Application {
	if len(statuses) == 0 {
		return apps
	}
	return keep(apps, func(app types.Application) bool {
		return slices.Contains(statuses, app.Status)
	})
}

// IsRemote reports whether the job title, stage notes or company mention "remote".
// There is no hybrid detection; anything not remote counts as onsite.
func IsRemote(app types.Application) bool {
	return containsFold(app.JobTitle, "remote") ||
		containsFold(app.StageNotes, "remote") ||
		containsFold(app.Company, "remote")
}

// LocationOf classifies app as remote or onsite.
func LocationOf(app types.Application) LocationType {
	if IsRemote(app) {
		return LocationRemote
	}
	return LocationOnsite
}

// FilterByLocationType keeps applications matching any selected location type.
// Selecting hybrid lets every application through.
func FilterByLocationType(apps []types.Application, locationTypes []LocationType) []types.Application {
	if len(locationTypes) == 0 {
		return apps
	}

	wantRemote := slices.Contains(locationTypes, LocationRemote)
	wantOnsite := slices.Contains(locationTypes, LocationOnsite)
	wantHybrid := slices.Contains(locationTypes, LocationHybrid)

	return keep(apps, func(app types.Application) bool {
		remote := IsRemote(app)
		return (wantRemote && remote) || (wantOnsite && !remote) || wantHybrid
	})
}

// IsInternship reports whether the title or notes mention "intern".
func IsInternship(app types.Application) bool {
	return roleText(app, "intern")
}

// IsPartTime reports whether the title or notes mention "part-time" or "part time".
func IsPartTime(app types.Application) bool {
	return roleText(app, "part-time") || roleText(app, "part time")
}

// IsFullTime is the default classification: neither internship nor part-time.
func IsFullTime(app types.Application) bool {
	return !IsInternship(app) && !IsPartTime(app)
}

// RoleTypesOf returns every role classification that holds for app.
func RoleTypesOf(app types.Application) []RoleType {
	var roles []RoleType
	if IsFullTime(app) {
		roles = append(roles, RoleFullTime)
	}
	if IsPartTime(app) {
		roles = append(roles, RolePartTime)
	}
	if IsInternship(app) {
		roles = append(roles, RoleInternship)
	}
	return roles
}

// FilterByRoleType keeps applications for which any selected role classification holds.
func FilterByRoleType(apps []types.Application, roleTypes []RoleType) []types.Application {
	if len(roleTypes) == 0 {
		return apps
	}

	wantFull := slices.Contains(roleTypes, RoleFullTime)
	wantPart := slices.Contains(roleTypes, RolePartTime)
	wantIntern := slices.Contains(roleTypes, RoleInternship)

	return keep(apps, func(app types.Application) bool {
		intern := IsInternship(app)
		part := IsPartTime(app)
		full := !intern && !part
		return (wantFull && full) || (wantPart && part) || (wantIntern && intern)
	})
}

func roleText(app types.Application, keyword string) bool {
	return strings.Contains(strings.ToLower(app.JobTitle), keyword) ||
		strings.Contains(strings.ToLower(app.StageNotes), keyword)
}
