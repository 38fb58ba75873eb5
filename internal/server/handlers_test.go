package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
jane@example.com

Summary:
Backend engineer with five years building Go and Python services.

Skills:
Go, Python, PostgreSQL, Docker, Kubernetes

Experience:
Senior Engineer at Acme Corp building REST APIs with Go and PostgreSQL.

Education:
BSc Computer Science, State University`

const testJob = `We are hiring a backend engineer. Required: Go, PostgreSQL,
Docker and experience designing REST APIs. Kubernetes is a plus.`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_DISABLED", "true")

	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	return s
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHandleAnalyzeText(t *testing.T) {
	s := newTestServer(t)

	payload, err := json.Marshal(map[string]string{
		"resume_text": testResume,
		"job_text":    testJob,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze/text", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
	assert.Empty(t, resp.ID, "no database configured, response should carry no ID")
	assert.Greater(t, resp.Report.OverallScore, 0)
	assert.NotEmpty(t, resp.Report.Rating)
	assert.Contains(t, resp.Report.MatchedKeywords, "go")
	assert.Contains(t, resp.Report.MatchedKeywords, "postgresql")
}

func TestHandleAnalyzeTextValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"resume_text": `},
		{"missing resume_text", `{"job_text": "backend engineer"}`},
		{"missing job_text", `{"resume_text": "Jane Doe, engineer"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyze/text", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func multipartUpload(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleAnalyzeUpload(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartUpload(t, "resume.txt", []byte(testResume), map[string]string{
		"job_description": testJob,
	})

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "resume.txt", resp.ResumeFilename)
	require.NotNil(t, resp.Report)
	assert.Greater(t, resp.Report.OverallScore, 0)
}

func TestHandleAnalyzeUploadErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		filename   string
		content    []byte
		fields     map[string]string
		wantStatus int
	}{
		{
			name:       "missing resume file",
			fields:     map[string]string{"job_description": testJob},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing job description and URL",
			filename:   "resume.txt",
			content:    []byte(testResume),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported file type",
			filename:   "resume.exe",
			content:    []byte("binary"),
			fields:     map[string]string{"job_description": testJob},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "invalid job URL",
			filename:   "resume.txt",
			content:    []byte(testResume),
			fields:     map[string]string{"job_url": "not-a-url"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tt.filename, tt.content, tt.fields)

			req := httptest.NewRequest(http.MethodPost, "/analyze", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHistoryEndpointsWithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/analyses"},
		{http.MethodGet, "/analyses/8d4e1e86-9f2a-4d4b-a9f3-111111111111"},
		{http.MethodDelete, "/analyses/8d4e1e86-9f2a-4d4b-a9f3-111111111111"},
		{http.MethodGet, "/analyses/8d4e1e86-9f2a-4d4b-a9f3-111111111111/report.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
