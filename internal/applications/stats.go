package applications

import "github.com/jonathan/applyday/internal/types"

// Summary counts applications per status.
type Summary struct {
	Total    int                  `json:"total"`
	ByStatus map[types.Status]int `json:"by_status"`
}

// Summarize counts the loaded collection locally. Unknown statuses are counted
// under their own key; every known status is present even when zero.
func Summarize(apps []types.Application) Summary {
	counts := make(map[types.Status]int, len(types.Statuses))
	for _, s := range types.Statuses {
		counts[s] = 0
	}
	for _, app := range apps {
		counts[app.Status]++
	}
	return Summary{Total: len(apps), ByStatus: counts}
}

// Stats converts the summary to the backend stats shape.
func (s Summary) Stats() types.Stats {
	return types.Stats{
		Total:       s.Total,
		Applied:     s.ByStatus[types.StatusApplied],
		Rejected:    s.ByStatus[types.StatusRejected],
		Interviewed: s.ByStatus[types.StatusInterviewed],
		Offered:     s.ByStatus[types.StatusOffered],
	}
}
