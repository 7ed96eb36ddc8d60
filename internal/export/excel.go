// Package export writes application lists to Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	ApplicationsSheet = "Applications"
	SummarySheet      = "Summary"
)

// appliedLayout formats the Applied column.
const appliedLayout = "2006-01-02"

// Columns of the Applications sheet, in order.
var Columns = []string{"ID", "Company", "Job Title", "Status", "Location Type", "Role Types", "Applied", "Notes"}

var columnWidths = []float64{8, 28, 34, 14, 14, 22, 12, 60}

// Options adds context to the Summary sheet.
type Options struct {
	Title       string
	Filters     applications.Filters
	GeneratedAt time.Time
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Title == "" {
		out.Title = "Job Applications"
	}
	if out.GeneratedAt.IsZero() {
		out.GeneratedAt = time.Now()
	}
	return out
}

// statusFills colours the Status cell.
var statusFills = map[types.Status]string{
	types.StatusPrepared:    "D9D9D9",
	types.StatusApplied:     "BDD7EE",
	types.StatusInterviewed: "FFEB9C",
	types.StatusOffered:     "C6EFCE",
	types.StatusRejected:    "FFC7CE",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// ExportToExcel writes apps to path, adding ".xlsx" if it is missing, and
// returns the path written.
func ExportToExcel(apps []types.Application, opts *Options, path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := build(apps, opts)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return "", fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}
		if fileErr := os.WriteFile(path, buf.Bytes(), 0644); fileErr != nil {
			return "", fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}
	return path, nil
}

// WriteExcel streams the workbook to w.
func WriteExcel(apps []types.Application, opts *Options, w io.Writer) error {
	f, err := build(apps, opts)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel workbook: %w", err)
	}
	return nil
}

func build(apps []types.Application, opts *Options) (*excelize.File, error) {
	o := opts.withDefaults()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ApplicationsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeApplicationsSheet(f, apps); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create applications sheet: %w", err)
	}
	if err := writeSummarySheet(f, apps, o); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func headerStyle(f *excelize.File, size float64) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: size, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
}

func writeApplicationsSheet(f *excelize.File, apps []types.Application) error {
	sheet := ApplicationsSheet

	header, err := headerStyle(f, 11)
	if err != nil {
		return err
	}
	body, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}
	statusStyles := make(map[types.Status]int, len(statusFills))
	for status, color := range statusFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
			Border:    thinBorder,
		})
		if err != nil {
			return err
		}
		statusStyles[status] = id
	}

	for i, name := range Columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, columnWidths[i]); err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", header); err != nil {
		return err
	}

	for i, app := range apps {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &[]any{
			app.ID,
			app.Company,
			app.JobTitle,
			string(app.Status),
			string(applications.LocationOf(app)),
			joinRoles(applications.RoleTypesOf(app)),
			appliedCell(app),
			app.StageNotes,
		}); err != nil {
			return err
		}

		if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), body); err != nil {
			return err
		}
		if style, ok := statusStyles[app.Status]; ok {
			statusCell := fmt.Sprintf("D%d", row)
			if err := f.SetCellStyle(sheet, statusCell, statusCell, style); err != nil {
				return err
			}
		}
	}

	if len(apps) > 0 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, len(apps)+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummarySheet(f *excelize.File, apps []types.Application, o Options) error {
	sheet := SummarySheet
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return err
	}

	title, err := headerStyle(f, 14)
	if err != nil {
		return err
	}
	label, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := applications.Summarize(apps)
	rows := [][]any{
		{o.Title},
		nil,
		{"Generated:", o.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Filters:", describeFilters(o.Filters)},
		{"Total:", summary.Total},
		nil,
		{"Status", "Count"},
	}
	for _, status := range types.Statuses {
		rows = append(rows, []any{string(status), summary.ByStatus[status]})
	}

	for i, values := range rows {
		if values == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "A5", label); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A7", "B7", label)
}

func appliedCell(app types.Application) string {
	at := applications.AppliedAt(app)
	if at.IsZero() {
		return ""
	}
	return at.Format(appliedLayout)
}

func joinRoles(roles []applications.RoleType) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func describeFilters(filters applications.Filters) string {
	if filters.IsZero() {
		return "none"
	}
	var parts []string
	if filters.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", filters.SearchTerm))
	}
	if len(filters.Statuses) > 0 {
		names := make([]string, len(filters.Statuses))
		for i, s := range filters.Statuses {
			names[i] = string(s)
		}
		parts = append(parts, "status "+strings.Join(names, "/"))
	}
	if len(filters.LocationTypes) > 0 {
		names := make([]string, len(filters.LocationTypes))
		for i, l := range filters.LocationTypes {
			names[i] = string(l)
		}
		parts = append(parts, "location "+strings.Join(names, "/"))
	}
	if len(filters.RoleTypes) > 0 {
		parts = append(parts, "role "+joinRoles(filters.RoleTypes))
	}
	if filters.SortBy != "" {
		order := filters.SortOrder
		if order == "" {
			order = applications.SortDesc
		}
		parts = append(parts, fmt.Sprintf("sorted by %s %s", filters.SortBy, order))
	}
	return strings.Join(parts, "; ")
}
