package analyzer

import (
	"fmt"
	"math"
)

// Section score band thresholds and baselines. The bands are: 0 for an
// empty section, fair (40-69) for a short section, good (70-100, scaled by
// length) for a substantial one.
const (
	goodBandTokens   = 30 // tokens needed to enter the good band
	goodBandFloor    = 70 // score at exactly goodBandTokens tokens
	fairBandFloor    = 40 // base score for a non-empty short section
	skillsBaseline   = 20 // minimum skills score for a non-empty section
	headingIncrement = 25 // formatting points per recognized heading group
	maxSectionScore  = 100
)

// SectionScore is one section's numeric score and its generated feedback.
type SectionScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// SectionScores holds the per-section breakdown of a report.
type SectionScores struct {
	Skills     SectionScore `json:"skills"`
	Experience SectionScore `json:"experience"`
	Education  SectionScore `json:"education"`
	Formatting SectionScore `json:"formatting"`
}

// Average returns the mean of the four section scores.
func (s SectionScores) Average() float64 {
	return float64(s.Skills.Score+s.Experience.Score+s.Education.Score+s.Formatting.Score) / 4
}

// ScoreSections combines segmenter output and the keyword gap into
// per-section scores and feedback strings. Feedback is template-generated
// from the numeric band plus keyword counts, fully deterministic.
func (a *Analyzer) ScoreSections(seg Segments, gap KeywordGap) SectionScores {
	return SectionScores{
		Skills:     a.scoreSkills(seg, gap),
		Experience: a.scoreLengthBanded(seg, SectionExperience),
		Education:  a.scoreLengthBanded(seg, SectionEducation),
		Formatting: scoreFormatting(seg),
	}
}

// scoreSkills scores the skills section by the share of matched job
// keywords whose surface form appears in the skills section text, floored
// at a baseline when the section is non-empty at all.
func (a *Analyzer) scoreSkills(seg Segments, gap KeywordGap) SectionScore {
	skillsTokens := a.Normalize(seg.Skills)
	if len(skillsTokens) == 0 {
		return SectionScore{Score: 0, Feedback: "No skills section found; add one listing the technologies the job asks for."}
	}

	skillsSet := make(map[string]struct{}, len(skillsTokens))
	for _, tok := range skillsTokens {
		skillsSet[tok] = struct{}{}
	}

	inSkills := 0
	for _, term := range gap.Matched {
		if _, ok := skillsSet[term]; ok {
			inSkills++
		}
	}

	total := len(gap.Matched) + len(gap.Missing)
	score := skillsBaseline
	if total > 0 {
		score = int(math.Round(float64(inSkills) / float64(total) * 100))
		if score < skillsBaseline {
			score = skillsBaseline
		}
	}

	return SectionScore{
		Score:    score,
		Feedback: fmt.Sprintf("%s: %d of %d job keywords appear in your skills section (%d missing from the resume).", bandLabel(score), inSkills, total, len(gap.Missing)),
	}
}

// scoreLengthBanded applies the presence-weighted heuristic used for the
// experience and education sections: empty scores 0, short sections land in
// the fair band, and sections of at least goodBandTokens tokens land in the
// good band, scaled by length up to the cap.
func (a *Analyzer) scoreLengthBanded(seg Segments, section Section) SectionScore {
	n := len(a.Normalize(seg.Text(section)))
	if n == 0 {
		return SectionScore{Score: 0, Feedback: fmt.Sprintf("No %s section found.", section)}
	}

	var score int
	if n >= goodBandTokens {
		score = goodBandFloor + n - goodBandTokens
		if score > maxSectionScore {
			score = maxSectionScore
		}
	} else {
		score = fairBandFloor + n
	}

	return SectionScore{
		Score:    score,
		Feedback: fmt.Sprintf("%s: %s section has %d substantive terms.", bandLabel(score), section, n),
	}
}

// scoreFormatting scores structural signals only: each recognized heading
// group contributes a fixed increment, capped at 100. This is the one
// section score independent of keyword matching.
func scoreFormatting(seg Segments) SectionScore {
	score := len(seg.Headings) * headingIncrement
	if score > maxSectionScore {
		score = maxSectionScore
	}

	if score == 0 {
		return SectionScore{Score: 0, Feedback: "No recognizable section headings; use standard headings like Skills, Experience and Education."}
	}
	return SectionScore{
		Score:    score,
		Feedback: fmt.Sprintf("%s: %d standard section headings recognized.", bandLabel(score), len(seg.Headings)),
	}
}

// bandLabel maps a score to its qualitative band.
func bandLabel(score int) string {
	switch {
	case score >= goodBandFloor:
		return "Strong"
	case score >= fairBandFloor:
		return "Adequate"
	default:
		return "Below threshold"
	}
}
