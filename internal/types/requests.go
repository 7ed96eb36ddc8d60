package types

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ISODateLayouts are the timestamp layouts the backend accepts for date ranges.
var ISODateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var (
	// ErrNoReportScope is returned when a report request names neither jobs nor a date range.
	ErrNoReportScope = errors.New("either job_ids or start_at/end_at must be provided")
	// ErrIncompleteRange is returned when only one end of a date range is set.
	ErrIncompleteRange = errors.New("start_at and end_at must be provided together")
)

// ApplicationRequest is the body for creating or replacing an application.
type ApplicationRequest struct {
	Company        string `json:"company" validate:"required,max=255"`
	JobTitle       string `json:"job_title" validate:"required,max=255"`
	JobDescription string `json:"job_description,omitempty"`
	Status         Status `json:"status,omitempty" validate:"omitempty,oneof=prepared applied interviewed offered rejected"`
	StageNotes     string `json:"stage_notes"` // always sent so a PUT can clear it
}

// ReportRequest starts an analytics run over selected JDs or a creation-date window.
type ReportRequest struct {
	JobIDs    []int64  `json:"job_ids,omitempty" validate:"omitempty,dive,gt=0"`
	StartAt   string   `json:"start_at,omitempty" validate:"omitempty,isodate"`
	EndAt     string   `json:"end_at,omitempty" validate:"omitempty,isodate"`
	ResumeID  *int64   `json:"resume_id,omitempty" validate:"omitempty,gt=0"`
	Languages []string `json:"languages,omitempty" validate:"omitempty,dive,min=2"`
}

// ProcessExtractRequest asks the backend to extract every JD created in [Start, End].
type ProcessExtractRequest struct {
	Start string `json:"start" validate:"required,isodate"`
	End   string `json:"end" validate:"required,isodate"`
}

// ExtractRequest creates a raw JD text entry.
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseISODate parses s using the first matching layout in ISODateLayouts.
func ParseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range ISODateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// WithDefaults returns a copy with Status defaulted to applied, matching the backend model default.
func (r ApplicationRequest) WithDefaults() ApplicationRequest {
	if r.Status == "" {
		r.Status = StatusApplied
	}
	return r
}

// Validate validates the ApplicationRequest using the validator.
func (r *ApplicationRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ReportRequest using the validator.
func (r *ReportRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.StartAt == "") != (r.EndAt == "") {
		return ErrIncompleteRange
	}
	if len(r.JobIDs) == 0 && r.StartAt == "" {
		return ErrNoReportScope
	}
	return nil
}

// Validate validates the ProcessExtractRequest using the validator.
func (r *ProcessExtractRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}
