package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/applyday/internal/rendering"
	"github.com/jonathan/applyday/internal/types"
)

// handleListResumes lists uploaded resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.backend.ListResumes(r.Context())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

// handleDeleteResume removes a resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	if err := s.backend.DeleteResume(r.Context(), id); err != nil {
		s.failure(w, r, notFound(err, "resume", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListExtracts lists raw JD extracts
func (s *Server) handleListExtracts(w http.ResponseWriter, r *http.Request) {
	extracts, err := s.backend.ListExtracts(r.Context())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"extracts": extracts,
		"count":    len(extracts),
	})
}

// handleProcessExtracts asks the backend to extract JDs created in a window
func (s *Server) handleProcessExtracts(w http.ResponseWriter, r *http.Request) {
	var req types.ProcessExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failure(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}

	msg, err := s.backend.ProcessExtracts(r.Context(), req)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusAccepted, map[string]string{"message": msg})
}

// handleListReports lists analytics reports
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.backend.ListReports(r.Context())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

// handleCreateReport starts a backend analytics run
func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failure(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}

	report, err := s.backend.CreateReport(r.Context(), req)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, report)
}

// handleGetReport returns a report as JSON
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.loadReport(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleViewReport renders a report as a standalone HTML page
func (s *Server) handleViewReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.loadReport(w, r)
	if !ok {
		return
	}

	page, err := rendering.RenderReportHTML(report)
	if err != nil {
		s.failure(w, r, fmt.Errorf("failed to render report %d: %w", report.ID, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("[server] error writing report page: %v", err)
	}
}

func (s *Server) loadReport(w http.ResponseWriter, r *http.Request) (*types.Report, bool) {
	id, err := pathID(r)
	if err != nil {
		s.failure(w, r, err)
		return nil, false
	}

	report, err := s.backend.GetReport(r.Context(), id)
	if err != nil {
		s.failure(w, r, notFound(err, "report", id))
		return nil, false
	}
	return report, true
}
