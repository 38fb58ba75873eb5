package analyzer

import "strings"

// Section identifies one of the fixed resume sections.
type Section string

// Recognized sections. Summary is the implicit bucket for text before the
// first recognized heading; it feeds the formatting score only.
const (
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSummary    Section = "summary"
)

// headingRule pairs a section with the heading keywords that open it.
// Rules are matched in order and the first match wins, so tie-breaks
// between overlapping keyword sets are explicit here rather than implicit
// in code order elsewhere.
type headingRule struct {
	section  Section
	keywords []string
}

var headingRules = []headingRule{
	{SectionSkills, []string{"skills", "technical skills", "core competencies"}},
	{SectionExperience, []string{"experience", "work history", "employment"}},
	{SectionEducation, []string{"education", "academic", "qualifications"}},
	{SectionSummary, []string{"summary", "objective", "profile"}},
}

// Heading candidacy limits. Body sentences that merely mention a keyword
// ("5 years experience in Flask") must not open a section, so a heading
// line has to be short.
const (
	maxHeadingWords = 4
	maxHeadingChars = 48
)

// Segments holds the substring of the resume belonging to each recognized
// section, plus the distinct heading groups found in document order.
type Segments struct {
	Skills     string
	Experience string
	Education  string
	Summary    string

	// Headings lists each section whose heading was recognized at least
	// once, in order of first appearance.
	Headings []Section
}

// Text returns the substring captured for the given section.
func (s Segments) Text(section Section) string {
	switch section {
	case SectionSkills:
		return s.Skills
	case SectionExperience:
		return s.Experience
	case SectionEducation:
		return s.Education
	case SectionSummary:
		return s.Summary
	}
	return ""
}

// Segment splits raw resume text into labeled sections using heading
// heuristics. Lines are scanned top to bottom; a line that looks like a
// heading (short, contains a known keyword, case-insensitive) opens its
// section, and every following line belongs to it until the next recognized
// heading or end of document. Lines before the first heading land in the
// summary bucket. With no recognizable headings at all, every section is
// empty and Headings is nil.
func Segment(resumeText string) Segments {
	var seg Segments
	parts := map[Section][]string{}
	seen := map[Section]bool{}

	current := SectionSummary
	for _, line := range strings.Split(resumeText, "\n") {
		if section, ok := matchHeading(line); ok {
			current = section
			if !seen[section] {
				seen[section] = true
				seg.Headings = append(seg.Headings, section)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts[current] = append(parts[current], line)
	}

	// The implicit summary bucket only exists once a heading was seen;
	// otherwise the document has no recognizable structure and every
	// section stays empty.
	if len(seg.Headings) == 0 {
		return Segments{}
	}

	seg.Skills = strings.Join(parts[SectionSkills], "\n")
	seg.Experience = strings.Join(parts[SectionExperience], "\n")
	seg.Education = strings.Join(parts[SectionEducation], "\n")
	seg.Summary = strings.Join(parts[SectionSummary], "\n")
	return seg
}

// matchHeading reports whether the line is a recognized section heading and
// which section it opens. The first rule whose keyword set matches wins.
func matchHeading(line string) (Section, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	if trimmed == "" {
		return "", false
	}
	if len(trimmed) > maxHeadingChars || len(strings.Fields(trimmed)) > maxHeadingWords {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range headingRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.section, true
			}
		}
	}
	return "", false
}
