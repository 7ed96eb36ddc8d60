package applications

import "github.com/jonathan/applyday/internal/types"

func sampleApplications() []types.Application {
	return []types.Application{
		{ID: 1, Company: "Acme", JobTitle: "Backend Engineer", Status: types.StatusApplied, ApplicationDate: "2024-01-10"},
		{ID: 2, Company: "Zeta Remote Labs", JobTitle: "Platform Engineer", Status: types.StatusOffered, ApplicationDate: "2024-03-01"},
		{ID: 3, Company: "globex", JobTitle: "Marketing Intern", Status: types.StatusRejected, StageNotes: "Summer cohort", ApplicationDate: "2024-02-15"},
		{ID: 4, Company: "Initech", JobTitle: "Support Analyst", Status: types.StatusInterviewed, StageNotes: "Part time, fully remote", ApplicationDate: "2024-02-01"},
		{ID: 5, Company: "Umbrella", JobTitle: "Data Scientist", Status: types.StatusPrepared, CreatedAt: "2024-04-02T09:30:00Z"},
	}
}

func ids(apps []types.Application) []int64 {
	out := make([]int64, len(apps))
	for i, app := range apps {
		out[i] = app.ID
	}
	return out
}
