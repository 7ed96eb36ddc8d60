package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/applyday/internal/types"
)

const (
	applicationsPath = "/app/info/"
	statsPath        = "/app/info/get_stats/"
)

// ListOptions are the server-side filters supported by /app/info/.
// JobTitle and Company match case-insensitively; Status matches exactly.
type ListOptions struct {
	JobTitle string
	Company  string
	Status   types.Status
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.JobTitle != "" {
		q.Set("job_title", o.JobTitle)
	}
	if o.Company != "" {
		q.Set("company", o.Company)
	}
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	return q
}

// ListApplications fetches the application collection, newest first.
func (c *Client) ListApplications(ctx context.Context, opts ListOptions) ([]types.Application, error) {
	apps := []types.Application{}
	if err := c.do(ctx, http.MethodGet, applicationsPath, opts.values(), nil, "", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApplication fetches a single application.
func (c *Client) GetApplication(ctx context.Context, id int64) (*types.Application, error) {
	var app types.Application
	if err := c.doJSON(ctx, http.MethodGet, idPath(applicationsPath, id), nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication creates an application and returns the stored record.
func (c *Client) CreateApplication(ctx context.Context, req types.ApplicationRequest) (*types.Application, error) {
	var app types.Application
	if err := c.doJSON(ctx, http.MethodPost, applicationsPath, req.WithDefaults(), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplication replaces an application.
func (c *Client) UpdateApplication(ctx context.Context, id int64, req types.ApplicationRequest) (*types.Application, error) {
	var app types.Application
	if err := c.doJSON(ctx, http.MethodPut, idPath(applicationsPath, id), req.WithDefaults(), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// DeleteApplication removes an application.
func (c *Client) DeleteApplication(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath(applicationsPath, id), nil, nil)
}

// GetStats returns the backend's per-status counts.
func (c *Client) GetStats(ctx context.Context) (*types.Stats, error) {
	var envelope struct {
		Data types.Stats `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, statsPath, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
