package analyzer

// KeywordGap classifies every significant job-description term as matched
// or missing against the resume. The two lists are disjoint, cover all
// significant terms, and both preserve first-appearance order from the job
// description.
type KeywordGap struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// KeywordGap extracts the significant terms of the job description (every
// distinct normalized token; stopwords are already gone from the token
// stream) and classifies each as matched when it occurs verbatim in the
// resume tokens, missing otherwise.
func (a *Analyzer) KeywordGap(resumeTokens, jobTokens []string) KeywordGap {
	resumeSet := make(map[string]struct{}, len(resumeTokens))
	for _, tok := range resumeTokens {
		resumeSet[tok] = struct{}{}
	}

	var gap KeywordGap
	seen := make(map[string]struct{}, len(jobTokens))
	for _, term := range jobTokens {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}

		if _, ok := resumeSet[term]; ok {
			gap.Matched = append(gap.Matched, term)
		} else {
			gap.Missing = append(gap.Missing, term)
		}
	}
	return gap
}
