// Package types provides type definitions for the records exchanged with the ApplyDay backend.
package types

import "encoding/json"

// Status is the pipeline stage of a job application.
type Status string

const (
	StatusPrepared    Status = "prepared"
	StatusApplied     Status = "applied"
	StatusInterviewed Status = "interviewed"
	StatusOffered     Status = "offered"
	StatusRejected    Status = "rejected"
)

// Statuses lists every status the backend accepts, in pipeline order.
var Statuses = []Status{
	StatusPrepared,
	StatusApplied,
	StatusInterviewed,
	StatusOffered,
	StatusRejected,
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application is a tracked job application as returned by /app/info/.
// Absent or null text fields decode to the empty string.
type Application struct {
	ID              int64  `json:"id"`
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	JobDescription  string `json:"job_description,omitempty"`
	Status          Status `json:"status"`
	StageNotes      string `json:"stage_notes"`
	ApplicationDate string `json:"application_date,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// UnmarshalJSON tolerates null for the nullable text columns.
func (a *Application) UnmarshalJSON(data []byte) error {
	type alias Application
	var raw struct {
		alias
		JobDescription *string `json:"job_description"`
		StageNotes     *string `json:"stage_notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Application(raw.alias)
	if raw.JobDescription != nil {
		a.JobDescription = *raw.JobDescription
	}
	if raw.StageNotes != nil {
		a.StageNotes = *raw.StageNotes
	}
	return nil
}

// Stats holds per-status counts as computed by the backend get_stats action.
type Stats struct {
	Total       int `json:"total"`
	Applied     int `json:"applied"`
	Rejected    int `json:"rejected"`
	Interviewed int `json:"interviewed"`
	Offered     int `json:"offered"`
}
