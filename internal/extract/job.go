package extract

import (
	"sort"
	"strings"

	"github.com/spigell/resume-matcher/internal/match"
)

var (
	requiredSectionMarkers = []string{
		"required:", "requirements:", "must have:", "required skills:", "qualifications:",
	}
	preferredSectionMarkers = []string{
		"preferred:", "nice to have:", "bonus:", "preferred skills:", "pluses:",
	}

	requiredContextWords  = []string{"required", "must", "need", "essential", "requirement"}
	preferredContextWords = []string{"preferred", "nice", "bonus", "plus", "desired"}
)

const contextWindow = 50

// JobRequirement derives the structured requirement set from job
// description text. Skills are assigned to required or preferred by the
// section they appear under; skills found outside any marked section are
// classified by nearby wording and default to required.
func (e *Extractor) JobRequirement(text string) match.JobRequirement {
	lower := strings.ToLower(text)

	required := make(map[string]struct{})
	preferred := make(map[string]struct{})

	section := ""
	for _, line := range strings.Split(lower, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case containsAny(line, requiredSectionMarkers):
			section = "required"
		case containsAny(line, preferredSectionMarkers):
			section = "preferred"
		case line == "" || line == "---" || line == "___":
			section = ""
		}
		if section == "" {
			continue
		}
		for _, skill := range e.Skills(line) {
			if section == "required" {
				required[skill] = struct{}{}
			} else {
				preferred[skill] = struct{}{}
			}
		}
	}

	for _, skill := range e.Skills(lower) {
		if _, ok := required[skill]; ok {
			continue
		}
		if _, ok := preferred[skill]; ok {
			continue
		}
		switch classifyByContext(lower, skill) {
		case "preferred":
			preferred[skill] = struct{}{}
		default:
			required[skill] = struct{}{}
		}
	}

	// A skill listed as required never counts as merely preferred.
	for skill := range required {
		delete(preferred, skill)
	}

	return match.JobRequirement{
		RequiredSkills:     sortedKeys(required),
		PreferredSkills:    sortedKeys(preferred),
		MinExperienceYears: e.ExperienceYears(text),
		MinEducation:       minEducation(e.Education(text)),
	}
}

func classifyByContext(lower, skill string) string {
	pos := strings.Index(lower, skill)
	if pos < 0 {
		return "required"
	}
	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	end := pos + len(skill) + contextWindow
	if end > len(lower) {
		end = len(lower)
	}
	context := lower[start:end]

	if containsAny(context, requiredContextWords) {
		return "required"
	}
	if containsAny(context, preferredContextWords) {
		return "preferred"
	}
	return "required"
}

func minEducation(levels []match.EducationLevel) match.EducationLevel {
	if len(levels) == 0 {
		return match.LevelUnspecified
	}
	// levels are ordered highest first; a job listing several degrees
	// accepts the lowest of them as the minimum.
	return levels[len(levels)-1]
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
