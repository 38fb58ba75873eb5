package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion severity levels.
const (
	SuggestionCritical = "critical"
	SuggestionWarning  = "warning"
	SuggestionSuccess  = "success"
)

// Suggestion is one piece of rule-generated improvement advice.
type Suggestion struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TermCount is a resume term and how often it occurs.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Suggestion rule thresholds.
const (
	lowMatchThreshold    = 8  // fewer matched keywords than this is critical
	highMissingThreshold = 15 // more missing keywords than this warrants a warning
	strongMatchThreshold = 12 // matched keywords needed for the success note
	strongMissingCeiling = 8  // missing keywords allowed for the success note
	missingPreviewCount  = 5  // missing keywords quoted in the warning message
	densityDefaultTopN   = 15
)

// actionVerbs are the verbs whose absence triggers the weak-verbs warning.
var actionVerbs = []string{"led", "developed", "managed", "implemented", "designed"}

// Suggestions generates deterministic, rule-based improvement advice from
// the raw resume text and the keyword gap. No free-form generation: the
// same inputs always produce the same list.
func (a *Analyzer) Suggestions(resumeText string, gap KeywordGap) []Suggestion {
	resumeLower := strings.ToLower(resumeText)
	var out []Suggestion

	if len(gap.Matched) < lowMatchThreshold {
		out = append(out, Suggestion{
			Type:    SuggestionCritical,
			Title:   "Low keyword match",
			Message: fmt.Sprintf("Only %d relevant keywords were found. Aim for at least 10-20 job-specific terms.", len(gap.Matched)),
		})
	}

	if len(gap.Missing) > highMissingThreshold {
		preview := gap.Missing
		if len(preview) > missingPreviewCount {
			preview = preview[:missingPreviewCount]
		}
		out = append(out, Suggestion{
			Type:    SuggestionWarning,
			Title:   "Missing key skills",
			Message: fmt.Sprintf("%d important keywords are missing. Consider adding: %s.", len(gap.Missing), strings.Join(preview, ", ")),
		})
	}

	if !strings.Contains(resumeLower, "increased") && !strings.Contains(resumeLower, "improved") && !strings.Contains(resumeText, "%") {
		out = append(out, Suggestion{
			Type:    SuggestionWarning,
			Title:   "No measurable achievements",
			Message: `Add quantifiable metrics (e.g., "reduced processing time by 30%", "improved conversion by 12%").`,
		})
	}

	hasVerb := false
	for _, verb := range actionVerbs {
		if strings.Contains(resumeLower, verb) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		out = append(out, Suggestion{
			Type:    SuggestionWarning,
			Title:   "Weak action verbs",
			Message: "Use stronger action verbs: Led, Developed, Managed, Implemented, Designed.",
		})
	}

	if len(gap.Matched) >= strongMatchThreshold && len(gap.Missing) <= strongMissingCeiling {
		out = append(out, Suggestion{
			Type:    SuggestionSuccess,
			Title:   "Great keyword alignment",
			Message: "Your resume aligns well with this role. Keep tailoring for each application.",
		})
	}

	if len(out) == 0 {
		out = append(out, Suggestion{
			Type:    SuggestionSuccess,
			Title:   "Good resume foundation",
			Message: "Your resume looks solid. Continue tailoring it for each role.",
		})
	}
	return out
}

// KeywordDensity returns the topN most frequent resume tokens with their
// counts, most frequent first. Ties are broken by first appearance in the
// resume so the output is deterministic.
func (a *Analyzer) KeywordDensity(resumeTokens []string, topN int) []TermCount {
	if topN <= 0 {
		topN = densityDefaultTopN
	}

	counts := make(map[string]int, len(resumeTokens))
	firstSeen := make(map[string]int, len(resumeTokens))
	order := make([]string, 0, len(resumeTokens))
	for i, tok := range resumeTokens {
		if counts[tok] == 0 {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	out := make([]TermCount, 0, len(order))
	for _, tok := range order {
		out = append(out, TermCount{Term: tok, Count: counts[tok]})
	}
	return out
}
