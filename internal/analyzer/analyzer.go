// Package analyzer scores how well a resume matches a target job
// description and produces section-level feedback. The whole pipeline is a
// pure function of its two text inputs: it holds no mutable state, runs
// synchronously, and always returns a complete report, even for empty or
// structureless input.
package analyzer

import "math"

// Rating labels derived from the overall score.
const (
	RatingExcellent = "Excellent Match"
	RatingGood      = "Good Match"
	RatingNeedsWork = "Needs Improvement"

	excellentThreshold = 80
	goodThreshold      = 60
)

// Analyzer runs the scoring pipeline. Construct it once and share it
// freely: it is immutable and safe for concurrent use.
type Analyzer struct {
	stopwords   map[string]struct{}
	densityTopN int
}

// New returns an Analyzer using the default stopword set.
func New() *Analyzer {
	return &Analyzer{stopwords: defaultStopwords, densityTopN: densityDefaultTopN}
}

// NewWithDensityTopN returns an Analyzer whose reports include up to n
// keyword-density entries instead of the default.
func NewWithDensityTopN(n int) *Analyzer {
	a := New()
	if n > 0 {
		a.densityTopN = n
	}
	return a
}

// Report is the complete result of one analysis. Immutable after creation.
type Report struct {
	OverallScore    int           `json:"overall_score"`
	Rating          string        `json:"rating"`
	Readiness       int           `json:"readiness"`
	Sections        SectionScores `json:"sections"`
	MatchedKeywords []string      `json:"matched_keywords"`
	MissingKeywords []string      `json:"missing_keywords"`
	KeywordDensity  []TermCount   `json:"keyword_density"`
	Suggestions     []Suggestion  `json:"suggestions"`
}

// Analyze runs the full pipeline: normalize both texts, segment the resume,
// score overall similarity, classify keyword gaps, score sections, and
// aggregate everything into one report. The overall score comes straight
// from the similarity scorer; section scores are an independent diagnostic
// breakdown. Degenerate input (empty text, no headings, no keywords) is not
// an error and degrades to baseline scores.
func (a *Analyzer) Analyze(resumeText, jobText string) *Report {
	resumeTokens := a.Normalize(resumeText)
	jobTokens := a.Normalize(jobText)

	seg := Segment(resumeText)
	overall := a.SimilarityScore(resumeTokens, jobTokens)
	gap := a.KeywordGap(resumeTokens, jobTokens)
	sections := a.ScoreSections(seg, gap)

	return &Report{
		OverallScore:    overall,
		Rating:          rating(overall),
		Readiness:       readiness(overall, sections),
		Sections:        sections,
		MatchedKeywords: gap.Matched,
		MissingKeywords: gap.Missing,
		KeywordDensity:  a.KeywordDensity(resumeTokens, a.densityTopN),
		Suggestions:     a.Suggestions(resumeText, gap),
	}
}

func rating(overall int) string {
	switch {
	case overall >= excellentThreshold:
		return RatingExcellent
	case overall >= goodThreshold:
		return RatingGood
	default:
		return RatingNeedsWork
	}
}

// readiness blends the top-line score with the section average into one
// coarse preparedness number.
func readiness(overall int, sections SectionScores) int {
	return int(math.Round((float64(overall) + sections.Average()) / 2))
}
