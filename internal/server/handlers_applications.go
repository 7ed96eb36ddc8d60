package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/jonathan/applyday/internal/export"
	"github.com/jonathan/applyday/internal/types"
)

// ApplicationsResponse is the body of GET /applications.
type ApplicationsResponse struct {
	Applications []types.Application  `json:"applications"`
	Count        int                  `json:"count"`
	Total        int                  `json:"total"`
	Filters      applications.Filters `json:"filters"`
}

// StatsResponse is the body of GET /applications/stats. Backend is nil when
// the backend stats call failed.
type StatsResponse struct {
	Local        applications.Summary `json:"local"`
	Backend      *types.Stats         `json:"backend"`
	BackendError string               `json:"backend_error,omitempty"`
	Consistent   bool                 `json:"consistent"`
}

// filtersFromQuery reads view parameters from the query string. List values
// may be repeated or comma-separated.
func filtersFromQuery(q url.Values) (applications.Filters, error) {
	list := func(key string) []string {
		var out []string
		for _, v := range q[key] {
			out = append(out, applications.SplitList(v)...)
		}
		return out
	}

	f := applications.Filters{
		SearchTerm:    q.Get("search"),
		Statuses:      applications.ParseList[types.Status](list("status")),
		LocationTypes: applications.ParseList[applications.LocationType](list("location")),
		RoleTypes:     applications.ParseList[applications.RoleType](list("role")),
		SortBy:        applications.SortBy(strings.ToLower(q.Get("sort_by"))),
		SortOrder:     applications.SortOrder(strings.ToLower(q.Get("sort_order"))),
	}
	if err := f.Validate(); err != nil {
		return applications.Filters{}, validationError(err)
	}
	return f, nil
}

// decodeApplication reads and validates an application request body.
func decodeApplication(r *http.Request) (types.ApplicationRequest, error) {
	var req types.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return req, validationError(err)
	}
	return req, nil
}

// handleListApplications returns the processed view of the full collection
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r.URL.Query())
	if err != nil {
		s.failure(w, r, err)
		return
	}

	all, err := s.backend.ListApplications(r.Context(), backend.ListOptions{})
	if err != nil {
		s.failure(w, r, err)
		return
	}

	view := applications.Process(all, filters)
	s.jsonResponse(w, http.StatusOK, ApplicationsResponse{
		Applications: view,
		Count:        len(view),
		Total:        len(all),
		Filters:      filters,
	})
}

// handleFilterOptions returns the filter options for the full collection
func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	all, err := s.backend.ListApplications(r.Context(), backend.ListOptions{})
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, applications.GetFilterOptions(all))
}

// handleStats combines the local summary with backend stats. Both calls run
// concurrently; only the collection fetch is fatal.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var (
		all      []types.Application
		remote   *types.Stats
		statsErr error
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		all, err = s.backend.ListApplications(ctx, backend.ListOptions{})
		return err
	})
	g.Go(func() error {
		remote, statsErr = s.backend.GetStats(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.failure(w, r, err)
		return
	}

	local := applications.Summarize(all)
	resp := StatsResponse{Local: local}
	if statsErr != nil {
		log.Printf("[server] backend stats unavailable, using local summary: %v", statsErr)
		resp.BackendError = statsErr.Error()
	} else {
		resp.Backend = remote
		resp.Consistent = remote != nil && *remote == local.Stats()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleExport streams the processed view as an xlsx workbook
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r.URL.Query())
	if err != nil {
		s.failure(w, r, err)
		return
	}

	all, err := s.backend.ListApplications(r.Context(), backend.ListOptions{})
	if err != nil {
		s.failure(w, r, err)
		return
	}

	// Buffer so a failed build can still produce a JSON error.
	var buf bytes.Buffer
	opts := &export.Options{Filters: filters, GeneratedAt: time.Now()}
	if err := export.WriteExcel(applications.Process(all, filters), opts, &buf); err != nil {
		s.failure(w, r, fmt.Errorf("failed to build export: %w", err))
		return
	}

	name := fmt.Sprintf("applications-%s.xlsx", opts.GeneratedAt.Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[server] error writing export: %v", err)
	}
}

// handleGetApplication returns a single application
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	app, err := s.backend.GetApplication(r.Context(), id)
	if err != nil {
		s.failure(w, r, notFound(err, "application", id))
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleCreateApplication validates and forwards a new application
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	req, err := decodeApplication(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	app, err := s.backend.CreateApplication(r.Context(), req)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

// handleUpdateApplication validates and forwards a full replacement
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	req, err := decodeApplication(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	app, err := s.backend.UpdateApplication(r.Context(), id, req)
	if err != nil {
		s.failure(w, r, notFound(err, "application", id))
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleDeleteApplication removes an application
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	if err := s.backend.DeleteApplication(r.Context(), id); err != nil {
		s.failure(w, r, notFound(err, "application", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
