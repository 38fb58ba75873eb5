package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// AnalysisRecord is one stored analysis: the inputs' identity, the
// top-line score, and the full report.
type AnalysisRecord struct {
	ID             uuid.UUID        `json:"id"`
	ResumeFilename string           `json:"resume_filename"`
	JobDescription string           `json:"job_description"`
	OverallScore   int              `json:"overall_score"`
	Report         *analyzer.Report `json:"report,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
