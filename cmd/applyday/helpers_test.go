package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/jonathan/applyday/internal/config"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fakeBackend serves the subset of the ApplyDay REST API the commands use.
type fakeBackend struct {
	mu sync.Mutex

	apps      []types.Application
	statsDown bool

	created     *types.ApplicationRequest
	updated     *types.ApplicationRequest
	updatedBody string
	deletedPath string
	extractText string
	resumeName  string
	processed   *types.ProcessExtractRequest
	reportReq   *types.ReportRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{apps: []types.Application{
		{ID: 1, Company: "Acme", JobTitle: "Backend Engineer", Status: types.StatusApplied, ApplicationDate: "2024-01-10"},
		{ID: 2, Company: "Globex", JobTitle: "Remote Data Intern", Status: types.StatusInterviewed, ApplicationDate: "2024-02-01"},
		{ID: 3, Company: "Initech", JobTitle: "Part-time QA", Status: types.StatusRejected, ApplicationDate: "2023-12-24"},
		{ID: 4, Company: "Umbrella", JobTitle: "Platform Engineer", Status: types.StatusOffered, StageNotes: "remote friendly", ApplicationDate: "2024-03-05"},
	}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /app/info/{$}", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, fb.apps)
	})
	mux.HandleFunc("GET /app/info/get_stats/", func(w http.ResponseWriter, _ *http.Request) {
		if fb.statsDown {
			reply(w, http.StatusInternalServerError, map[string]string{"error": "stats unavailable"})
			return
		}
		reply(w, http.StatusOK, map[string]any{"data": types.Stats{Total: 4, Applied: 1, Interviewed: 1, Offered: 1, Rejected: 1}})
	})
	mux.HandleFunc("GET /app/info/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if app := fb.find(r.PathValue("id")); app != nil {
			reply(w, http.StatusOK, app)
			return
		}
		reply(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})
	mux.HandleFunc("POST /app/info/{$}", func(w http.ResponseWriter, r *http.Request) {
		var req types.ApplicationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.created = &req
		fb.mu.Unlock()
		reply(w, http.StatusCreated, types.Application{ID: 50, Company: req.Company, JobTitle: req.JobTitle, Status: req.Status})
	})
	mux.HandleFunc("PUT /app/info/{id}/", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var req types.ApplicationRequest
		_ = json.Unmarshal(data, &req)
		fb.mu.Lock()
		fb.updated = &req
		fb.updatedBody = string(data)
		fb.mu.Unlock()
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		reply(w, http.StatusOK, types.Application{ID: id, Company: req.Company, JobTitle: req.JobTitle, Status: req.Status})
	})
	mux.HandleFunc("DELETE /", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.deletedPath = r.URL.Path
		fb.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /app/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			reply(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		fb.mu.Lock()
		fb.resumeName = r.FormValue("name")
		fb.mu.Unlock()
		reply(w, http.StatusCreated, types.Resume{ID: 3, Name: r.FormValue("name"), Text: "extracted text"})
	})
	mux.HandleFunc("POST /app/extract/{$}", func(w http.ResponseWriter, r *http.Request) {
		var req types.ExtractRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.extractText = req.Text
		fb.mu.Unlock()
		reply(w, http.StatusCreated, types.JDText{ID: 9, Text: req.Text})
	})
	mux.HandleFunc("PATCH /app/extract/{id}/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		fb.mu.Lock()
		fb.extractText = body["text"]
		fb.mu.Unlock()
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		reply(w, http.StatusOK, types.JDText{ID: id, Text: body["text"]})
	})
	mux.HandleFunc("POST /extract/process_extract/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ProcessExtractRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.processed = &req
		fb.mu.Unlock()
		reply(w, http.StatusOK, map[string]string{"message": "Processed 2 extracts"})
	})
	mux.HandleFunc("GET /report/jd/{$}", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []types.JobDescription{{ID: 11, Company: "Acme", Role: "Backend Engineer", Level: "senior", RemoteWork: types.RemoteWorkHybrid}})
	})
	mux.HandleFunc("GET /report/reports/{$}", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []types.Report{fixtureReport()})
	})
	mux.HandleFunc("GET /report/reports/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "7" {
			reply(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		reply(w, http.StatusOK, fixtureReport())
	})
	mux.HandleFunc("POST /report/reports/{$}", func(w http.ResponseWriter, r *http.Request) {
		var req types.ReportRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.reportReq = &req
		fb.mu.Unlock()
		reply(w, http.StatusCreated, fixtureReport())
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) find(rawID string) *types.Application {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil
	}
	for i := range fb.apps {
		if fb.apps[i].ID == id {
			app := fb.apps[i]
			return &app
		}
	}
	return nil
}

func fixtureReport() types.Report {
	return types.Report{
		ID:        7,
		CreatedAt: "2024-03-01T10:00:00Z",
		Results: []types.AnalysisResult{
			{ID: 1, Name: "freq.role", Result: json.RawMessage(`{"Backend Engineer": 3}`)},
			{ID: 2, Name: "graph.skills", Result: json.RawMessage(`{"nodes": []}`)},
		},
		LatestSummary: &types.Summary{ID: 1, Content: "# Market\n\nGo is in demand."},
	}
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// resetFlags restores every flag to its default so commands can run
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvBackendURL, "")

	resetFlags(rootCmd)
	settings = config.Config{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
