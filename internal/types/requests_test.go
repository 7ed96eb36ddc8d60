//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request ApplicationRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: ApplicationRequest{Company: "Acme", JobTitle: "Engineer", Status: StatusInterviewed},
		},
		{
			name:    "valid request without status",
			request: ApplicationRequest{Company: "Acme", JobTitle: "Engineer"},
		},
		{
			name:    "missing company",
			request: ApplicationRequest{JobTitle: "Engineer"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "missing job title",
			request: ApplicationRequest{Company: "Acme"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "unknown status",
			request: ApplicationRequest{Company: "Acme", JobTitle: "Engineer", Status: "ghosted"},
			wantErr: true,
			errMsg:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplicationRequest_WithDefaults(t *testing.T) {
	req := ApplicationRequest{Company: "Acme", JobTitle: "Engineer"}
	assert.Equal(t, StatusApplied, req.WithDefaults().Status)
	assert.Empty(t, req.Status, "original should be untouched")

	req.Status = StatusOffered
	assert.Equal(t, StatusOffered, req.WithDefaults().Status)
}

func TestReportRequest_Validation(t *testing.T) {
	resumeID := int64(2)
	tests := []struct {
		name    string
		request ReportRequest
		wantErr error
		errMsg  string
	}{
		{
			name:    "job ids",
			request: ReportRequest{JobIDs: []int64{1, 2}, ResumeID: &resumeID},
		},
		{
			name:    "date range",
			request: ReportRequest{StartAt: "2024-01-01", EndAt: "2024-02-01T00:00:00Z"},
		},
		{
			name:    "no scope",
			request: ReportRequest{},
			wantErr: ErrNoReportScope,
		},
		{
			name:    "start without end",
			request: ReportRequest{StartAt: "2024-01-01"},
			wantErr: ErrIncompleteRange,
		},
		{
			name:    "bad date",
			request: ReportRequest{StartAt: "yesterday", EndAt: "2024-01-01"},
			errMsg:  "isodate",
		},
		{
			name:    "non-positive job id",
			request: ReportRequest{JobIDs: []int64{0}},
			errMsg:  "gt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessExtractRequest_Validation(t *testing.T) {
	ok := ProcessExtractRequest{Start: "2024-01-01", End: "2024-01-31"}
	assert.NoError(t, ok.Validate())

	missing := ProcessExtractRequest{Start: "2024-01-01"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestExtractRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ExtractRequest{Text: "We are hiring"}).Validate())
	assert.Error(t, (&ExtractRequest{}).Validate())
}

func TestParseISODate(t *testing.T) {
	for _, s := range []string{"2024-03-01", "2024-03-01T12:30:00", "2024-03-01T12:30:00Z", "2024-03-01T12:30:00+02:00"} {
		_, err := ParseISODate(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseISODate("03/01/2024")
	assert.Error(t, err)
}

func TestValidationErrors_UseJSONNames(t *testing.T) {
	req := ApplicationRequest{Company: "Acme"}
	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "job_title", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}
