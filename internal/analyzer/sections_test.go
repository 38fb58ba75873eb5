package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSections_SkillsShareOfJobKeywords(t *testing.T) {
	a := New()
	resume := "Skills\ngo postgres docker"
	job := a.Normalize("go postgres docker kubernetes")
	gap := a.KeywordGap(a.Normalize(resume), job)

	scores := a.ScoreSections(Segment(resume), gap)

	// 3 of 4 significant job keywords present in the skills section.
	assert.Equal(t, 75, scores.Skills.Score)
	assert.Contains(t, scores.Skills.Feedback, "3 of 4")
}

func TestScoreSections_SkillsFlooredAtBaselineWhenNonEmpty(t *testing.T) {
	a := New()
	resume := "Skills\nwatercolor painting"
	job := a.Normalize("go postgres docker kubernetes terraform")
	gap := a.KeywordGap(a.Normalize(resume), job)

	scores := a.ScoreSections(Segment(resume), gap)

	assert.Equal(t, skillsBaseline, scores.Skills.Score)
}

func TestScoreSections_EmptySkillsScoresZero(t *testing.T) {
	a := New()
	gap := a.KeywordGap(nil, a.Normalize("go postgres"))

	scores := a.ScoreSections(Segments{}, gap)

	assert.Equal(t, 0, scores.Skills.Score)
}

func TestScoreSections_ExperienceGoodBand(t *testing.T) {
	a := New()
	// 50 substantive tokens after an Experience heading.
	resume := "Experience\n" + strings.Repeat("shipped resilient billing pipelines daily ", 10)

	scores := a.ScoreSections(Segment(resume), KeywordGap{})

	assert.GreaterOrEqual(t, scores.Experience.Score, goodBandFloor)
	assert.LessOrEqual(t, scores.Experience.Score, 100)
	assert.Contains(t, scores.Experience.Feedback, "Strong")
}

func TestScoreSections_ExperienceFairBand(t *testing.T) {
	a := New()
	resume := "Experience\nbuilt small internal tools"

	scores := a.ScoreSections(Segment(resume), KeywordGap{})

	assert.GreaterOrEqual(t, scores.Experience.Score, fairBandFloor)
	assert.Less(t, scores.Experience.Score, goodBandFloor)
}

func TestScoreSections_EmptyExperienceScoresZero(t *testing.T) {
	a := New()

	scores := a.ScoreSections(Segments{}, KeywordGap{})

	assert.Equal(t, 0, scores.Experience.Score)
	assert.Equal(t, 0, scores.Education.Score)
}

func TestScoreSections_GoodBandCappedAtHundred(t *testing.T) {
	a := New()
	resume := "Education\n" + strings.Repeat("graduate coursework covering compiler construction ", 40)

	scores := a.ScoreSections(Segment(resume), KeywordGap{})

	assert.Equal(t, 100, scores.Education.Score)
}

func TestScoreSections_FormattingCountsHeadings(t *testing.T) {
	a := New()
	resume := "Summary\nhello\nSkills\ngo\nExperience\nwork\nEducation\nschool"

	scores := a.ScoreSections(Segment(resume), KeywordGap{})

	assert.Equal(t, 100, scores.Formatting.Score)
}

func TestScoreSections_FormattingZeroWithoutHeadings(t *testing.T) {
	a := New()

	scores := a.ScoreSections(Segment("plain paragraph, nothing resembling structure here"), KeywordGap{})

	assert.Equal(t, 0, scores.Formatting.Score)
}

func TestScoreSections_AllScoresWithinRange(t *testing.T) {
	a := New()
	resume := sampleResume
	job := a.Normalize("go python postgres docker communication")
	gap := a.KeywordGap(a.Normalize(resume), job)

	scores := a.ScoreSections(Segment(resume), gap)

	for name, s := range map[string]SectionScore{
		"skills": scores.Skills, "experience": scores.Experience,
		"education": scores.Education, "formatting": scores.Formatting,
	} {
		assert.GreaterOrEqual(t, s.Score, 0, name)
		assert.LessOrEqual(t, s.Score, 100, name)
		assert.NotEmpty(t, s.Feedback, name)
	}
}
