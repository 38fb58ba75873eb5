package analyzer

import "math"

// The corpus is always exactly two documents: the resume and the job
// description. IDF uses the smoothed formula 1 + log10((1+N)/(1+df)) so a
// term present in both documents still carries weight instead of dividing
// to zero information. Base 10 keeps the document-frequency signal gentle:
// with only two documents a steeper log lets rare-term weight swamp the
// vocabulary overlap that the score is meant to measure.
const corpusSize = 2.0

// TermVector maps a token to its TF-IDF weight within one document of the
// two-document corpus.
type TermVector map[string]float64

// termFrequencies returns count/len(tokens) per distinct token.
func termFrequencies(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	total := float64(len(tokens))
	for tok := range counts {
		counts[tok] /= total
	}
	return counts
}

// tfidfVectors builds the TF-IDF vectors for the resume and job description
// over their shared two-document corpus.
func tfidfVectors(resumeTokens, jobTokens []string) (TermVector, TermVector) {
	resumeTF := termFrequencies(resumeTokens)
	jobTF := termFrequencies(jobTokens)

	docFreq := make(map[string]float64, len(resumeTF)+len(jobTF))
	for tok := range resumeTF {
		docFreq[tok]++
	}
	for tok := range jobTF {
		docFreq[tok]++
	}

	idf := func(tok string) float64 {
		return 1 + math.Log10((1+corpusSize)/(1+docFreq[tok]))
	}

	resumeVec := make(TermVector, len(resumeTF))
	for tok, tf := range resumeTF {
		resumeVec[tok] = tf * idf(tok)
	}
	jobVec := make(TermVector, len(jobTF))
	for tok, tf := range jobTF {
		jobVec[tok] = tf * idf(tok)
	}
	return resumeVec, jobVec
}

// cosine computes cosine similarity between two term vectors: dot product
// over the shared vocabulary divided by the product of the norms. Defined
// as 0 when either norm is zero.
func cosine(a, b TermVector) float64 {
	var dot float64
	for tok, wa := range a {
		if wb, ok := b[tok]; ok {
			dot += wa * wb
		}
	}

	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

func norm(v TermVector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// SimilarityScore computes the overall match score in [0,100] between the
// normalized resume and job description token streams. Symmetric in its
// arguments; empty input on either side scores 0.
func (a *Analyzer) SimilarityScore(resumeTokens, jobTokens []string) int {
	resumeVec, jobVec := tfidfVectors(resumeTokens, jobTokens)
	sim := cosine(resumeVec, jobVec)

	// Guard against float drift pushing the score outside [0,100].
	score := int(math.Round(sim * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
