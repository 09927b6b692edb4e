package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
)

const (
	maxUploadBytes   = 32 << 20
	defaultRunsLimit = 25
)

// QueryRequest is the request body for /api/agent/query.
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=3"`
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload ingests an uploaded dataset file and returns its summary.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A dataset file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return
	}

	filename := header.Filename
	if filename == "" {
		filename = "dataset.csv"
	}

	summary, err := s.ingestor.Ingest(r.Context(), filename, content)
	if err != nil {
		status := HTTPStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Upload failed: " + message
		}
		s.errorResponse(w, status, message)
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleSummary returns the summary of the stored dataset.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ingestor.Summary(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summary == nil {
		s.errorResponse(w, http.StatusNotFound, "No dataset uploaded yet.")
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleQuery executes a natural language query. Agent-level failures
// (missing dataset, clarification) are reported inside the payload,
// not as HTTP errors.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "query must be at least 3 characters")
		return
	}

	resp, err := s.agent.Query(r.Context(), req.Query)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRuns lists recent agent runs, newest first.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	runs, err := s.runs.RecentRuns(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.AgentRun{}
	}
	s.jsonResponse(w, http.StatusOK, runs)
}
