package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJDText_UnlinkedApplication(t *testing.T) {
	var extracts []JDText
	data := `[{"id": 1, "application": null, "text": "a", "created_at": "2024-01-01T00:00:00Z"},
	          {"id": 2, "application": 7, "text": "b", "created_at": "2024-01-02T00:00:00Z"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &extracts))

	require.Len(t, extracts, 2)
	assert.Nil(t, extracts[0].Application)
	require.NotNil(t, extracts[1].Application)
	assert.Equal(t, int64(7), *extracts[1].Application)
}

func TestReport_DecodesBackendShape(t *testing.T) {
	data := `{
		"id": 3,
		"created_at": "2024-03-01T10:00:00Z",
		"results": [
			{"id": 10, "name": "freq.role", "result": {"Backend Engineer": 4}},
			{"id": 11, "name": "swiss_knife", "result": [1, 2, 3]}
		],
		"latest_summary": {"id": 1, "created_at": "2024-03-01T10:05:00Z", "content": "## Summary"}
	}`

	var report Report
	require.NoError(t, json.Unmarshal([]byte(data), &report))

	assert.Equal(t, int64(3), report.ID)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "freq.role", report.Results[0].Name)
	assert.JSONEq(t, `{"Backend Engineer": 4}`, string(report.Results[0].Result))
	require.NotNil(t, report.LatestSummary)
	assert.Equal(t, "## Summary", report.LatestSummary.Content)
}

func TestReport_NoSummary(t *testing.T) {
	var report Report
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "results": [], "latest_summary": null}`), &report))
	assert.Nil(t, report.LatestSummary)
	assert.Empty(t, report.Results)
}

func TestJobDescription_NullableRanges(t *testing.T) {
	data := `{"id": 5, "company": "Acme", "salary_eur_min": 50000, "salary_eur_max": null,
		"years_experience_min": 3, "remote_work": "hybrid", "required_core_skills": ["go", "sql"]}`

	var jd JobDescription
	require.NoError(t, json.Unmarshal([]byte(data), &jd))

	require.NotNil(t, jd.SalaryEURMin)
	assert.InDelta(t, 50000, *jd.SalaryEURMin, 0.001)
	assert.Nil(t, jd.SalaryEURMax)
	require.NotNil(t, jd.YearsExperienceMin)
	assert.Equal(t, 3, *jd.YearsExperienceMin)
	assert.Equal(t, RemoteWorkHybrid, jd.RemoteWork)
	assert.Equal(t, []string{"go", "sql"}, jd.RequiredCoreSkills)
}
