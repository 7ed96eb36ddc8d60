// Package rendering turns backend reports and their markdown summaries into HTML.
package rendering

import (
	"fmt"
	"strings"
)

// builtinTemplate names the embedded report template in errors.
const builtinTemplate = "(built-in)"

// TemplateError means a report template could not be loaded, parsed or executed.
// Template is the file path, or "(built-in)" for the embedded page.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("report template %s: %s", e.Template, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError means report data could not be turned into a page. ReportID
// and Result are zero when the failure is not tied to one report or result.
type RenderError struct {
	ReportID int64
	Result   string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	var sb strings.Builder
	sb.WriteString("render")
	if e.ReportID != 0 {
		fmt.Fprintf(&sb, " report %d", e.ReportID)
	}
	if e.Result != "" {
		fmt.Fprintf(&sb, " result %q", e.Result)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
