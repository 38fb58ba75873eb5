// Package types provides request types shared between the HTTP server and
// the CLI, with explicit validation so malformed payloads fail at the
// boundary before the scoring core is invoked.
package types

import "github.com/go-playground/validator/v10"

// AnalyzeTextRequest is the JSON body for the text-only analysis endpoint.
// Both texts are required at the boundary; the core itself tolerates empty
// strings, but a request without them is a caller mistake.
type AnalyzeTextRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeUploadRequest captures the non-file fields of the multipart
// analysis endpoint.
type AnalyzeUploadRequest struct {
	JobText string `form:"job_description" validate:"required_without=JobURL"`
	JobURL  string `form:"job_url" validate:"omitempty,url"`
}

// Validate validates the AnalyzeUploadRequest using the validator.
func (r *AnalyzeUploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
