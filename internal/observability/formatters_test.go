package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPrintApplications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	apps := []types.Application{
		{ID: 1, Company: "Acme", JobTitle: "Backend Engineer", Status: types.StatusApplied, ApplicationDate: "2024-01-10"},
		{ID: 12, Company: "Zeta Remote Labs", JobTitle: "Platform Engineer", Status: types.StatusOffered},
	}
	p.PrintApplications(apps, 5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID  COMPANY"))
	assert.Contains(t, lines[1], "Acme")
	assert.Contains(t, lines[1], "2024-01-10")
	assert.Contains(t, lines[2], "remote")
	assert.Equal(t, "Showing 2 of 5 applications", lines[4])

	// tabwriter aligns the company column.
	assert.Equal(t, strings.Index(lines[0], "COMPANY"), strings.Index(lines[1], "Acme"))
}

func TestPrintApplications_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplications(nil, 3)
	assert.Equal(t, "No applications match (0 of 3).\n", buf.String())
}

func TestPrintApplication(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintApplication(&types.Application{
		ID:             4,
		Company:        "Initech",
		JobTitle:       "Support Analyst",
		Status:         types.StatusInterviewed,
		StageNotes:     "Part time, fully remote",
		JobDescription: strings.Repeat("word ", 100),
	})
	output := buf.String()

	assert.Contains(t, output, "APPLICATION #4")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "Location: remote")
	assert.Contains(t, output, "Notes:    Part time, fully remote")
	assert.NotContains(t, output, "Applied:")

	buf.Reset()
	p.PrintApplication(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFilterOptions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFilterOptions(applications.FilterOptions{
		Statuses:      []types.Status{types.StatusApplied, types.StatusOffered},
		LocationTypes: []applications.LocationType{applications.LocationRemote},
		SortOptions:   []applications.SortOption{{Value: applications.SortByDate, Label: "Application Date"}},
	})
	output := buf.String()

	assert.Contains(t, output, "Statuses:       applied, offered\n")
	assert.Contains(t, output, "Location types: remote\n")
	assert.Contains(t, output, "Role types:     (none)\n")
	assert.Contains(t, output, "Sort by:        date (Application Date)\n")
}

func TestPrintStats(t *testing.T) {
	local := applications.Summary{
		Total: 3,
		ByStatus: map[types.Status]int{
			types.StatusPrepared: 1,
			types.StatusApplied:  2,
		},
	}

	t.Run("with backend", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintStats(local, &types.Stats{Total: 10, Applied: 6, Offered: 1})
		output := buf.String()

		assert.Contains(t, output, "APPLICATION STATS")
		assert.Contains(t, output, "Backend")
		assert.Regexp(t, `applied\s+2\s+6`, output)
		assert.Regexp(t, `prepared\s+1\s+-`, output)
		assert.Regexp(t, `total\s+3\s+10`, output)
	})

	t.Run("local only", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintStats(local, nil)
		output := buf.String()

		assert.NotContains(t, output, "Backend")
		assert.Regexp(t, `total\s+3\s+│`, output)
	})
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.Report{
		ID:        7,
		CreatedAt: "2024-05-01T10:00:00Z",
		LatestSummary: &types.Summary{
			Content: "# Summary\n\nLine one\nLine two\nLine three\nLine four\nLine five\nLine six",
		},
	}
	for i := 0; i < 12; i++ {
		report.Results = append(report.Results, types.AnalysisResult{Name: "freq.role", Result: json.RawMessage(`{}`)})
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "REPORT #7")
	assert.Contains(t, output, "Results:  12")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "# Summary")
	assert.Contains(t, output, "Line four")
	assert.NotContains(t, output, "Line five")

	buf.Reset()
	p.PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintReports(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReports(nil)
	assert.Equal(t, "No reports.\n", buf.String())

	buf.Reset()
	p.PrintReports([]types.Report{{ID: 1, CreatedAt: "2024-05-01", LatestSummary: &types.Summary{}}, {ID: 2}})
	assert.Regexp(t, `1\s+2024-05-01\s+0\s+yes`, buf.String())
	assert.Regexp(t, `2\s+0\s+no`, buf.String())
}

func TestPrintResumesAndExtracts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumes([]types.Resume{{ID: 3, Name: "backend.pdf", Text: "héllo", UploadedAt: "2024-01-01"}})
	assert.Regexp(t, `3\s+backend\.pdf\s+2024-01-01\s+5`, buf.String())

	buf.Reset()
	p.PrintExtracts([]types.JDText{
		{ID: 1, Application: int64Ptr(9), Text: strings.Repeat("a", 80)},
		{ID: 2, Text: "We are hiring\n  a Go developer"},
	})
	output := buf.String()
	assert.Contains(t, output, strings.Repeat("a", 37)+"...")
	assert.Contains(t, output, "We are hiring a Go developer")
	assert.Regexp(t, `2\s+-`, output)

	buf.Reset()
	p.PrintResumes(nil)
	p.PrintExtracts(nil)
	p.PrintJobDescriptions(nil)
	assert.Equal(t, "No resumes.\nNo extracts.\nNo job descriptions.\n", buf.String())
}

func TestPrintJobDescriptions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDescriptions([]types.JobDescription{
		{ID: 5, Company: "Acme", Role: "Backend Engineer", Level: "senior", Location: "Berlin", RemoteWork: types.RemoteWorkHybrid},
	})
	assert.Regexp(t, `5\s+Acme\s+Backend Engineer\s+senior\s+Berlin\s+hybrid`, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
	assert.Equal(t, "a b", truncate("a\tb", 10))
	assert.Equal(t, "Notes:    x", truncate("Notes:    x", 20))
	assert.Equal(t, "  • freq.role", truncate("  • freq.role", 20))
}
