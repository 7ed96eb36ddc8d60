package rendering

import (
	"bytes"
	"cmp"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"slices"
	"strings"

	"github.com/jonathan/applyday/internal/types"
)

//go:embed templates/report.html.tmpl
var defaultReportTemplate string

// ReportPage is the data the report template receives.
type ReportPage struct {
	Title       string
	ReportID    int64
	CreatedAt   string
	SummaryHTML template.HTML
	SummaryAt   string
	Groups      []ResultGroup
}

// ResultGroup collects results that share a kind.
type ResultGroup struct {
	Kind    string
	Results []ResultView
}

// ResultView is one analysis result prepared for display. Frequency maps
// become Rows; anything else is shown as indented JSON.
type ResultView struct {
	Name  string
	Topic string
	Rows  []FrequencyRow
	JSON  string
}

// FrequencyRow is one term and its count.
type FrequencyRow struct {
	Term  string
	Count float64
}

// ResultKind is the part of a result name before the first dot.
func ResultKind(name string) string {
	kind, _, _ := strings.Cut(name, ".")
	return kind
}

// RenderReportHTML renders a standalone HTML page for report using the
// built-in template.
func RenderReportHTML(report *types.Report) (string, error) {
	tmpl, err := template.New("report").Parse(defaultReportTemplate)
	if err != nil {
		return "", &TemplateError{Template: builtinTemplate, Message: "failed to parse", Cause: err}
	}
	return execute(tmpl, report)
}

// RenderReportHTMLFrom renders report with the template file at templatePath.
func RenderReportHTMLFrom(report *types.Report, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, report)
}

func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{Template: templatePath, Message: "template file not found", Cause: err}
		}
		return nil, &TemplateError{Template: templatePath, Message: "failed to read template file", Cause: err}
	}

	tmpl, err := template.New(templatePath).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Template: templatePath, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, report *types.Report) (string, error) {
	page, err := BuildReportPage(report)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		name := tmpl.Name()
		if name == "report" {
			name = builtinTemplate
		}
		return "", &TemplateError{Template: name, Message: "failed to execute template", Cause: err}
	}
	return buf.String(), nil
}

// BuildReportPage groups results by kind, in order of first appearance.
func BuildReportPage(report *types.Report) (*ReportPage, error) {
	if report == nil {
		return nil, &RenderError{Message: "report is nil"}
	}

	page := &ReportPage{
		Title:     fmt.Sprintf("Report #%d", report.ID),
		ReportID:  report.ID,
		CreatedAt: report.CreatedAt,
	}

	if report.LatestSummary != nil && strings.TrimSpace(report.LatestSummary.Content) != "" {
		summary, err := RenderSummaryHTML(report.LatestSummary.Content)
		if err != nil {
			return nil, withReport(err, report.ID)
		}
		page.SummaryHTML = summary
		page.SummaryAt = report.LatestSummary.CreatedAt
	}

	index := make(map[string]int)
	for _, result := range report.Results {
		view, err := buildResultView(result)
		if err != nil {
			return nil, withReport(err, report.ID)
		}
		kind := ResultKind(result.Name)
		i, ok := index[kind]
		if !ok {
			i = len(page.Groups)
			index[kind] = i
			page.Groups = append(page.Groups, ResultGroup{Kind: kind})
		}
		page.Groups[i].Results = append(page.Groups[i].Results, view)
	}
	return page, nil
}

// withReport tags a RenderError with the report it came from.
func withReport(err error, id int64) error {
	var renderErr *RenderError
	if errors.As(err, &renderErr) && renderErr.ReportID == 0 {
		renderErr.ReportID = id
	}
	return err
}

func buildResultView(result types.AnalysisResult) (ResultView, error) {
	_, topic, found := strings.Cut(result.Name, ".")
	if !found {
		topic = result.Name
	}
	view := ResultView{Name: result.Name, Topic: topic}

	if len(result.Result) == 0 {
		return view, nil
	}

	if rows, ok := frequencyRows(result.Result); ok {
		view.Rows = rows
		return view, nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, result.Result, "", "  "); err != nil {
		return view, &RenderError{Result: result.Name, Message: "result is not valid JSON", Cause: err}
	}
	view.JSON = pretty.String()
	return view, nil
}

// frequencyRows decodes a term-to-count object, highest count first.
func frequencyRows(raw json.RawMessage) ([]FrequencyRow, bool) {
	var counts map[string]float64
	if err := json.Unmarshal(raw, &counts); err != nil || len(counts) == 0 {
		return nil, false
	}

	rows := make([]FrequencyRow, 0, len(counts))
	for term, count := range counts {
		rows = append(rows, FrequencyRow{Term: term, Count: count})
	}
	slices.SortFunc(rows, func(a, b FrequencyRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Term, b.Term)
	})
	return rows, true
}
