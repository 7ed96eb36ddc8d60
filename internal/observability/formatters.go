// Package observability formats applications, stats and reports for the terminal.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/types"
)

const (
	// boxWidth is the outer width of boxed output
	boxWidth = 60
	// maxItemsToShow caps list sections inside boxes
	maxItemsToShow = 5
	// maxCellWidth caps free-text table cells
	maxCellWidth = 40
)

// Printer writes human-readable output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
// Tabs become single spaces so box borders stay aligned.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\t", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func (p *Printer) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

// PrintApplications prints one row per application. total is the size of
// the unfiltered collection.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintApplications(apps []types.Application, total int) {
	if len(apps) == 0 {
		fmt.Fprintf(p.out, "No applications match (0 of %d).\n", total)
		return
	}

	p.table("ID\tCOMPANY\tTITLE\tSTATUS\tLOCATION\tAPPLIED", func(w io.Writer) {
		for _, app := range apps {
			applied := ""
			if at := applications.AppliedAt(app); !at.IsZero() {
				applied = at.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				app.ID,
				truncate(app.Company, maxCellWidth),
				truncate(app.JobTitle, maxCellWidth),
				app.Status,
				applications.LocationOf(app),
				applied,
			)
		}
	})
	fmt.Fprintf(p.out, "\nShowing %d of %d applications\n", len(apps), total)
}

// PrintApplication prints every field of a single application.
func (p *Printer) PrintApplication(app *types.Application) {
	if app == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", app.Company))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", app.JobTitle))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", app.Status))
	sb.WriteString(fmt.Sprintf("Location: %s\n", applications.LocationOf(*app)))
	if app.ApplicationDate != "" {
		sb.WriteString(fmt.Sprintf("Applied:  %s\n", app.ApplicationDate))
	}
	if app.StageNotes != "" {
		sb.WriteString(fmt.Sprintf("Notes:    %s\n", app.StageNotes))
	}
	if app.JobDescription != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", truncate(app.JobDescription, 3*(boxWidth-4))))
	}

	p.printBox(fmt.Sprintf("APPLICATION #%d", app.ID), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterOptions lists the values a user can filter and sort by.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintFilterOptions(opts applications.FilterOptions) {
	statuses := make([]string, len(opts.Statuses))
	for i, s := range opts.Statuses {
		statuses[i] = string(s)
	}
	locations := make([]string, len(opts.LocationTypes))
	for i, l := range opts.LocationTypes {
		locations[i] = string(l)
	}
	roles := make([]string, len(opts.RoleTypes))
	for i, r := range opts.RoleTypes {
		roles[i] = string(r)
	}
	sorts := make([]string, len(opts.SortOptions))
	for i, s := range opts.SortOptions {
		sorts[i] = fmt.Sprintf("%s (%s)", s.Value, s.Label)
	}

	fmt.Fprintf(p.out, "Statuses:       %s\n", orNone(statuses))
	fmt.Fprintf(p.out, "Location types: %s\n", orNone(locations))
	fmt.Fprintf(p.out, "Role types:     %s\n", orNone(roles))
	fmt.Fprintf(p.out, "Sort by:        %s\n", orNone(sorts))
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

// PrintStats prints status counts. remote may be nil when the backend was
// unreachable.
func (p *Printer) PrintStats(local applications.Summary, remote *types.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-13s %8s", "Status", "Loaded"))
	if remote != nil {
		sb.WriteString(fmt.Sprintf(" %8s", "Backend"))
	}
	sb.WriteString("\n")

	remoteCounts := map[types.Status]int{}
	if remote != nil {
		remoteCounts = map[types.Status]int{
			types.StatusApplied:     remote.Applied,
			types.StatusInterviewed: remote.Interviewed,
			types.StatusOffered:     remote.Offered,
			types.StatusRejected:    remote.Rejected,
		}
	}

	for _, status := range types.Statuses {
		sb.WriteString(fmt.Sprintf("%-13s %8d", status, local.ByStatus[status]))
		if remote != nil {
			if n, ok := remoteCounts[status]; ok {
				sb.WriteString(fmt.Sprintf(" %8d", n))
			} else {
				sb.WriteString(fmt.Sprintf(" %8s", "-"))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%-13s %8d", "total", local.Total))
	if remote != nil {
		sb.WriteString(fmt.Sprintf(" %8d", remote.Total))
	}

	p.printBox("APPLICATION STATS", sb.String())
}

// PrintReport prints result names grouped by kind and the start of the summary.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Created:  %s\n", report.CreatedAt))
	sb.WriteString(fmt.Sprintf("Results:  %d\n", len(report.Results)))

	if len(report.Results) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Results), maxItemsToShow*2)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Results[i].Name))
		}
		if len(report.Results) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Results)-count))
		}
	}

	if report.LatestSummary != nil && report.LatestSummary.Content != "" {
		sb.WriteString("\nSummary:\n")
		lines := nonEmptyLines(report.LatestSummary.Content)
		count := min(len(lines), maxItemsToShow)
		for _, line := range lines[:count] {
			sb.WriteString(line + "\n")
		}
		if len(lines) > count {
			sb.WriteString("...\n")
		}
	}

	p.printBox(fmt.Sprintf("REPORT #%d", report.ID), strings.TrimSuffix(sb.String(), "\n"))
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PrintReports prints one row per report.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintReports(reports []types.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(p.out, "No reports.")
		return
	}
	p.table("ID\tCREATED\tRESULTS\tSUMMARY", func(w io.Writer) {
		for _, r := range reports {
			summary := "no"
			if r.LatestSummary != nil {
				summary = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.ID, r.CreatedAt, len(r.Results), summary)
		}
	})
}

// PrintResumes prints one row per uploaded resume.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintResumes(resumes []types.Resume) {
	if len(resumes) == 0 {
		fmt.Fprintln(p.out, "No resumes.")
		return
	}
	p.table("ID\tNAME\tUPLOADED\tCHARS", func(w io.Writer) {
		for _, r := range resumes {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.ID, truncate(r.Name, maxCellWidth), r.UploadedAt, len([]rune(r.Text)))
		}
	})
}

// PrintExtracts prints one row per JD extract with the start of its text.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintExtracts(extracts []types.JDText) {
	if len(extracts) == 0 {
		fmt.Fprintln(p.out, "No extracts.")
		return
	}
	p.table("ID\tAPPLICATION\tCREATED\tTEXT", func(w io.Writer) {
		for _, e := range extracts {
			app := "-"
			if e.Application != nil {
				app = fmt.Sprintf("%d", *e.Application)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, app, e.CreatedAt, truncate(e.Text, maxCellWidth))
		}
	})
}

// PrintJobDescriptions prints one row per structured job description.
//
//nolint:errcheck // terminal output; write errors are not recoverable
func (p *Printer) PrintJobDescriptions(jds []types.JobDescription) {
	if len(jds) == 0 {
		fmt.Fprintln(p.out, "No job descriptions.")
		return
	}
	p.table("ID\tCOMPANY\tROLE\tLEVEL\tLOCATION\tREMOTE", func(w io.Writer) {
		for _, jd := range jds {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				jd.ID,
				truncate(jd.Company, maxCellWidth),
				truncate(jd.Role, maxCellWidth),
				jd.Level, jd.Location, jd.RemoteWork)
		}
	})
}
