// Package extract derives structured candidate and job attributes from
// already-extracted plain text. Absent signal is never an error: empty
// text yields empty skill sets, zero experience and no education levels.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/resume-matcher/internal/match"
	"github.com/spigell/resume-matcher/internal/taxonomy"
)

var currentYear = func() int { return time.Now().UTC().Year() }

// Extractor scans plain text against a fixed taxonomy. It compiles the
// term patterns once and is safe for concurrent use afterwards.
type Extractor struct {
	tax      *taxonomy.Taxonomy
	patterns []termPattern
}

type termPattern struct {
	canonical string
	re        *regexp.Regexp
}

// New builds an extractor for the given taxonomy. Terms are matched
// longest first on non-word boundaries, so a shorter term never gets
// credited inside a longer token ("java" inside "javascript").
func New(tax *taxonomy.Taxonomy) *Extractor {
	terms := tax.Terms()
	patterns := make([]termPattern, 0, len(terms))
	for _, term := range terms {
		canonical, ok := tax.Canonical(term)
		if !ok {
			continue
		}
		patterns = append(patterns, termPattern{
			canonical: canonical,
			re:        regexp.MustCompile(`(^|\W)` + regexp.QuoteMeta(term) + `($|\W)`),
		})
	}
	return &Extractor{tax: tax, patterns: patterns}
}

// Skills returns the canonical taxonomy terms found in the text as a
// sorted, deduplicated set. Patterns run longest term first and each
// match consumes its span, so a shorter term is never credited inside a
// longer phrase it is part of.
func (e *Extractor) Skills(text string) []string {
	lower := []byte(strings.ToLower(text))
	found := make(map[string]struct{})
	for _, p := range e.patterns {
		spans := p.re.FindAllIndex(lower, -1)
		if len(spans) == 0 {
			continue
		}
		found[p.canonical] = struct{}{}
		for _, span := range spans {
			for i := span[0]; i < span[1]; i++ {
				lower[i] = ' '
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?[^.\n]*?experience`),
	regexp.MustCompile(`experience[^.\n]*?(\d+)\+?\s*years?`),
	regexp.MustCompile(`minimum[^.\n]*?(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?[^.\n]*?(developer|engineer|professional|work|required)`),
}

var yearRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|present|current|now)`)

// ExperienceYears returns the largest plausible experience figure found
// in the text, or 0 when nothing matches. When no explicit "N years"
// phrase exists it falls back to the widest employment date range.
func (e *Extractor) ExperienceYears(text string) float64 {
	lower := strings.ToLower(text)

	years := 0
	for _, pattern := range experiencePatterns {
		for _, groups := range pattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(groups[1])
			if err != nil {
				continue
			}
			if n > years {
				years = n
			}
		}
	}
	if years > 0 {
		return float64(years)
	}

	for _, groups := range yearRangePattern.FindAllStringSubmatch(lower, -1) {
		start, err := strconv.Atoi(groups[1])
		if err != nil {
			continue
		}
		end := currentYear()
		if n, err := strconv.Atoi(groups[2]); err == nil {
			end = n
		}
		if span := end - start; span > years {
			years = span
		}
	}
	return float64(years)
}

var degreeKeywords = []struct {
	level    match.EducationLevel
	keywords []string
}{
	{match.Doctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{match.Master, []string{"master", "mba", "m.s.", "msc", "m.sc"}},
	{match.Bachelor, []string{"bachelor", "b.s.", "b.a.", "bsc", "b.sc"}},
	{match.Associate, []string{"associate degree", "associate's degree", "associates degree"}},
	{match.HighSchool, []string{"high school", "ged"}},
}

var degreePatterns = compileDegreePatterns()

func compileDegreePatterns() map[match.EducationLevel][]*regexp.Regexp {
	patterns := make(map[match.EducationLevel][]*regexp.Regexp, len(degreeKeywords))
	for _, entry := range degreeKeywords {
		res := make([]*regexp.Regexp, 0, len(entry.keywords))
		for _, keyword := range entry.keywords {
			res = append(res, regexp.MustCompile(`(^|\W)`+regexp.QuoteMeta(keyword)+`($|\W)`))
		}
		patterns[entry.level] = res
	}
	return patterns
}

// Education returns the distinct education levels found in the text,
// highest first. An empty slice means no degree signal was detected.
func (e *Extractor) Education(text string) []match.EducationLevel {
	lower := strings.ToLower(text)

	var levels []match.EducationLevel
	for _, entry := range degreeKeywords {
		for _, re := range degreePatterns[entry.level] {
			if re.MatchString(lower) {
				levels = append(levels, entry.level)
				break
			}
		}
	}
	// degreeKeywords is ordered highest first already.
	return levels
}

// CandidateProfile derives the full structured profile from resume text.
func (e *Extractor) CandidateProfile(text string) match.CandidateProfile {
	return match.CandidateProfile{
		Skills:          e.Skills(text),
		ExperienceYears: e.ExperienceYears(text),
		Education:       e.Education(text),
	}
}
