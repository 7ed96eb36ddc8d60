package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/applyday/internal/types"
)

const (
	resumesPath         = "/app/resumes/"
	extractsPath        = "/app/extract/"
	processExtractsPath = "/extract/process_extract/"
	jobDescriptionsPath = "/report/jd/"
	reportsPath         = "/report/reports/"
)

// ListResumes fetches every uploaded resume.
func (c *Client) ListResumes(ctx context.Context) ([]types.Resume, error) {
	resumes := []types.Resume{}
	if err := c.doJSON(ctx, http.MethodGet, resumesPath, nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// UploadResume uploads a PDF as multipart form data. The backend extracts its text.
func (c *Client) UploadResume(ctx context.Context, name, filename string, pdf io.Reader) (*types.Resume, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("failed to write name field: %w", err)
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file field: %w", err)
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return nil, fmt.Errorf("failed to copy resume: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	var resume types.Resume
	if err := c.do(ctx, http.MethodPost, resumesPath, nil, &buf, form.FormDataContentType(), &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// DeleteResume removes a resume.
func (c *Client) DeleteResume(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath(resumesPath, id), nil, nil)
}

// ListExtracts fetches raw JD texts.
func (c *Client) ListExtracts(ctx context.Context) ([]types.JDText, error) {
	extracts := []types.JDText{}
	if err := c.doJSON(ctx, http.MethodGet, extractsPath, nil, &extracts); err != nil {
		return nil, err
	}
	return extracts, nil
}

// CreateExtract stores raw JD text for later extraction.
func (c *Client) CreateExtract(ctx context.Context, req types.ExtractRequest) (*types.JDText, error) {
	var extract types.JDText
	if err := c.doJSON(ctx, http.MethodPost, extractsPath, req, &extract); err != nil {
		return nil, err
	}
	return &extract, nil
}

// UpdateExtractText patches the text of an extract. It is the only patchable field.
func (c *Client) UpdateExtractText(ctx context.Context, id int64, text string) (*types.JDText, error) {
	var extract types.JDText
	body := map[string]string{"text": text}
	if err := c.doJSON(ctx, http.MethodPatch, idPath(extractsPath, id), body, &extract); err != nil {
		return nil, err
	}
	return &extract, nil
}

// DeleteExtract removes an extract.
func (c *Client) DeleteExtract(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath(extractsPath, id), nil, nil)
}

// ProcessExtracts runs structured extraction over extracts created in the window
// and returns the backend's status message.
func (c *Client) ProcessExtracts(ctx context.Context, req types.ProcessExtractRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, processExtractsPath, req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListJobDescriptions fetches structured JDs, newest first.
func (c *Client) ListJobDescriptions(ctx context.Context) ([]types.JobDescription, error) {
	jds := []types.JobDescription{}
	if err := c.doJSON(ctx, http.MethodGet, jobDescriptionsPath, nil, &jds); err != nil {
		return nil, err
	}
	return jds, nil
}

// DeleteJobDescription removes a structured JD.
func (c *Client) DeleteJobDescription(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath(jobDescriptionsPath, id), nil, nil)
}

// ListReports fetches every analytics report.
func (c *Client) ListReports(ctx context.Context) ([]types.Report, error) {
	reports := []types.Report{}
	if err := c.doJSON(ctx, http.MethodGet, reportsPath, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches one report with its results and latest summary.
func (c *Client) GetReport(ctx context.Context, id int64) (*types.Report, error) {
	var report types.Report
	if err := c.doJSON(ctx, http.MethodGet, idPath(reportsPath, id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport starts a report. The backend runs the analysis synchronously.
func (c *Client) CreateReport(ctx context.Context, req types.ReportRequest) (*types.Report, error) {
	var report types.Report
	if err := c.doJSON(ctx, http.MethodPost, reportsPath, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport removes a report.
func (c *Client) DeleteReport(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath(reportsPath, id), nil, nil)
}
