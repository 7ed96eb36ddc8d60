package types

import "encoding/json"

// Resume is a resume uploaded as PDF whose text was extracted server-side.
type Resume struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	UploadedAt string `json:"uploaded_at"`
}

// JDText is raw job-description text queued for structured extraction.
// Application is nil for extracts not linked to an application.
type JDText struct {
	ID          int64  `json:"id"`
	Application *int64 `json:"application"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
}

// RemoteWork values used by structured job descriptions.
const (
	RemoteWorkRemote = "remote"
	RemoteWorkHybrid = "hybrid"
	RemoteWorkOnSite = "on-site"
)

// JobDescription is the structured form the backend extracts from a JDText.
type JobDescription struct {
	ID                   int64    `json:"id"`
	CreatedAt            string   `json:"created_at"`
	Company              string   `json:"company"`
	Role                 string   `json:"role"`
	Level                string   `json:"level"`
	Location             string   `json:"location"`
	EmploymentType       string   `json:"employment_type"`
	SalaryEURMin         *float64 `json:"salary_eur_min"`
	SalaryEURMax         *float64 `json:"salary_eur_max"`
	YearsExperienceMin   *int     `json:"years_experience_min"`
	YearsExperienceMax   *int     `json:"years_experience_max"`
	Responsibilities     []string `json:"responsibilities"`
	RequiredCoreSkills   []string `json:"required_core_skills"`
	DesirableSkills      []string `json:"desirable_skills"`
	ProgrammingLanguages []string `json:"programming_languages"`
	FrameworksTools      []string `json:"frameworks_tools"`
	Databases            []string `json:"databases"`
	CloudPlatforms       []string `json:"cloud_platforms"`
	RemoteWork           string   `json:"remote_work"`
	Industry             string   `json:"industry"`
	JobText              *JDText  `json:"job_text,omitempty"`
}

// Report is an analytics run over a set of structured job descriptions.
type Report struct {
	ID            int64            `json:"id"`
	CreatedAt     string           `json:"created_at"`
	Results       []AnalysisResult `json:"results"`
	LatestSummary *Summary         `json:"latest_summary"`
}

// AnalysisResult is one named analysis inside a report.
// Names follow a "kind.topic" convention such as "freq.role" or "tfidf.skills".
type AnalysisResult struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Result json.RawMessage `json:"result"`
}

// Summary is the AI-written markdown summary attached to a report.
type Summary struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
}
