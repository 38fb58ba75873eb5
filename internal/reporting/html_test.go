package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

func sampleData() ReportData {
	report := analyzer.New().Analyze(
		"Skills\nGo, PostgreSQL, Docker\nExperience\nBuilt and led backend services for payments.",
		"Go engineer with PostgreSQL, Docker and Kubernetes",
	)
	return ReportData{
		ResumeFilename: "resume.pdf",
		GeneratedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Report:         report,
	}
}

func TestRenderHTML_ContainsScoresAndKeywords(t *testing.T) {
	data := sampleData()

	html, err := RenderHTML(data)

	require.NoError(t, err)
	assert.Contains(t, html, "resume.pdf")
	assert.Contains(t, html, "2026-03-14 09:30:00")
	assert.Contains(t, html, "Overall ATS Score")
	assert.Contains(t, html, "kubernetes")
	assert.Contains(t, html, "postgresql")
	assert.Contains(t, html, data.Report.Rating)
}

func TestRenderHTML_EmptyKeywordListsRenderAsNone(t *testing.T) {
	report := analyzer.New().Analyze("", "")
	data := ReportData{ResumeFilename: "empty.txt", GeneratedAt: time.Now(), Report: report}

	html, err := RenderHTML(data)

	require.NoError(t, err)
	assert.Contains(t, html, "None")
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	report := analyzer.New().Analyze("plain resume", "plain job")
	data := ReportData{
		ResumeFilename: `<script>alert("x")</script>.pdf`,
		GeneratedAt:    time.Now(),
		Report:         report,
	}

	html, err := RenderHTML(data)

	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestRenderHTML_Deterministic(t *testing.T) {
	data := sampleData()

	first, err := RenderHTML(data)
	require.NoError(t, err)
	second, err := RenderHTML(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
