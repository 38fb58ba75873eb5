package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_PartialMatchScenario(t *testing.T) {
	a := New()

	report := a.Analyze(
		"Python developer with 5 years experience in Flask and SQL",
		"Looking for Python developer skilled in Flask, SQL, and Docker",
	)

	assert.Greater(t, report.OverallScore, 50)
	assert.Contains(t, report.MatchedKeywords, "python")
	assert.Contains(t, report.MatchedKeywords, "flask")
	assert.Contains(t, report.MatchedKeywords, "sql")
	assert.Contains(t, report.MissingKeywords, "docker")
}

func TestAnalyze_EmptyResume(t *testing.T) {
	a := New()

	report := a.Analyze("", "Python required")

	assert.Equal(t, 0, report.OverallScore)
	assert.Empty(t, report.MatchedKeywords)
	assert.Equal(t, []string{"python", "required"}, report.MissingKeywords)
	assert.Equal(t, 0, report.Sections.Skills.Score)
	assert.Equal(t, 0, report.Sections.Experience.Score)
	assert.Equal(t, 0, report.Sections.Education.Score)
	assert.Equal(t, 0, report.Sections.Formatting.Score)
	assert.Equal(t, RatingNeedsWork, report.Rating)
}

func TestAnalyze_BothInputsEmpty(t *testing.T) {
	a := New()

	report := a.Analyze("", "")

	require.NotNil(t, report)
	assert.Equal(t, 0, report.OverallScore)
	assert.Empty(t, report.MatchedKeywords)
	assert.Empty(t, report.MissingKeywords)
	assert.NotEmpty(t, report.Suggestions)
}

func TestAnalyze_NoHeadingsStillScoresSimilarity(t *testing.T) {
	a := New()

	report := a.Analyze(
		"python engineer building flask services with postgres",
		"python engineer familiar with flask and postgres",
	)

	assert.Greater(t, report.OverallScore, 0)
	assert.Equal(t, 0, report.Sections.Formatting.Score)
	assert.Equal(t, 0, report.Sections.Skills.Score)
	assert.Equal(t, 0, report.Sections.Experience.Score)
	assert.Equal(t, 0, report.Sections.Education.Score)
}

func TestAnalyze_OverallScoreAlwaysInRange(t *testing.T) {
	a := New()
	inputs := []string{"", "   ", "go", sampleResume, "!!! ??? ..."}

	for _, r := range inputs {
		for _, j := range inputs {
			report := a.Analyze(r, j)
			assert.GreaterOrEqual(t, report.OverallScore, 0)
			assert.LessOrEqual(t, report.OverallScore, 100)
			assert.GreaterOrEqual(t, report.Readiness, 0)
			assert.LessOrEqual(t, report.Readiness, 100)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := New()
	job := "Senior Go engineer: Kubernetes, PostgreSQL, gRPC, on-call experience"

	first, err := json.Marshal(a.Analyze(sampleResume, job))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(sampleResume, job))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_RatingBands(t *testing.T) {
	assert.Equal(t, RatingExcellent, rating(80))
	assert.Equal(t, RatingExcellent, rating(100))
	assert.Equal(t, RatingGood, rating(60))
	assert.Equal(t, RatingGood, rating(79))
	assert.Equal(t, RatingNeedsWork, rating(59))
	assert.Equal(t, RatingNeedsWork, rating(0))
}

func TestAnalyze_ReadinessBlendsOverallAndSections(t *testing.T) {
	a := New()

	// Identical structured texts: overall is 100 and sections are non-zero,
	// so readiness sits between the section average and the overall score.
	report := a.Analyze(sampleResume, sampleResume)

	assert.Equal(t, 100, report.OverallScore)
	assert.Greater(t, report.Readiness, 50)
	assert.LessOrEqual(t, report.Readiness, 100)
}

func TestAnalyze_FullReportForStructuredResume(t *testing.T) {
	a := New()

	report := a.Analyze(sampleResume, "Go engineer with PostgreSQL and Docker, payment domain a plus")

	assert.NotEmpty(t, report.MatchedKeywords)
	assert.NotEmpty(t, report.KeywordDensity)
	assert.NotEmpty(t, report.Suggestions)
	assert.Greater(t, report.Sections.Formatting.Score, 0)
	assert.Greater(t, report.Sections.Skills.Score, 0)
}
