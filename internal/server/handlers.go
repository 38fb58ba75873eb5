package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/reporting"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResponse is the response for both analysis endpoints.
type AnalyzeResponse struct {
	ID             string           `json:"id,omitempty"`
	ResumeFilename string           `json:"resume_filename,omitempty"`
	Report         *analyzer.Report `json:"report"`
}

// handleAnalyze runs the full pipeline on an uploaded resume file. The
// multipart form carries the "resume" file and either a "job_description"
// text field or a "job_url" to fetch the posting from.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ingestion.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(ingestion.MaxUploadBytes); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid multipart form: " + err.Error()})
		return
	}

	req := types.AnalyzeUploadRequest{
		JobText: r.FormValue("job_description"),
		JobURL:  r.FormValue("job_url"),
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.handleError(w, &ErrValidation{Message: "resume file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.handleError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	resumeText, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.handleError(w, err)
		return
	}

	jobText := req.JobText
	if jobText == "" {
		jobText, err = ingestion.FetchJobPosting(r.Context(), req.JobURL, s.useBrowser)
		if err != nil {
			s.handleError(w, err)
			return
		}
	}

	s.respondWithAnalysis(w, r, header.Filename, jobText, resumeText)
}

// handleAnalyzeText runs the pipeline on raw text, no file handling.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	s.respondWithAnalysis(w, r, "", req.JobText, req.ResumeText)
}

// respondWithAnalysis runs the core, persists the result when a database
// is configured, and writes the response. Persistence failure is logged
// but does not fail the request: the caller still gets their report.
func (s *Server) respondWithAnalysis(w http.ResponseWriter, r *http.Request, filename, jobText, resumeText string) {
	report := s.analyzer.Analyze(resumeText, jobText)

	resp := AnalyzeResponse{ResumeFilename: filename, Report: report}
	if s.db != nil {
		id, err := s.db.SaveAnalysis(r.Context(), filename, jobText, report)
		if err != nil {
			log.Printf("[SERVER] failed to persist analysis: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListAnalyses returns recent analysis history, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handleError(w, &ErrPersistenceDisabled{})
		return
	}

	records, err := s.db.ListAnalyses(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetAnalysis returns one stored analysis with its full report.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteAnalysis removes one stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handleError(w, &ErrPersistenceDisabled{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid analysis ID"})
		return
	}

	deleted, err := s.db.DeleteAnalysis(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !deleted {
		s.handleError(w, &ErrAnalysisNotFound{ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDownloadReport renders a stored analysis as a downloadable PDF.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}

	pdfBytes, err := reporting.RenderPDF(r.Context(), reporting.ReportData{
		ResumeFilename: rec.ResumeFilename,
		GeneratedAt:    rec.CreatedAt,
		Report:         rec.Report,
	})
	if err != nil {
		s.handleError(w, err)
		return
	}

	filename := fmt.Sprintf("resume_analysis_%s.pdf", rec.CreatedAt.Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("[SERVER] failed to write PDF response: %v", err)
	}
}

// lookupAnalysis resolves the {id} path value to a stored record, writing
// the error response itself when the lookup fails.
func (s *Server) lookupAnalysis(w http.ResponseWriter, r *http.Request) (*db.AnalysisRecord, bool) {
	if s.db == nil {
		s.handleError(w, &ErrPersistenceDisabled{})
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid analysis ID"})
		return nil, false
	}

	rec, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if rec == nil {
		s.handleError(w, &ErrAnalysisNotFound{ID: id})
		return nil, false
	}
	return rec, true
}
