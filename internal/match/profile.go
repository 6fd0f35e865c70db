package match

import (
	"fmt"
	"sort"
	"strings"
)

// EducationLevel ranks degree attainment. Comparisons always use the
// ordinal value, never the display name.
type EducationLevel int

const (
	// LevelUnspecified means no education signal was found or required.
	LevelUnspecified EducationLevel = iota
	HighSchool
	Associate
	Bachelor
	Master
	Doctorate
)

func (l EducationLevel) String() string {
	switch l {
	case HighSchool:
		return "high school"
	case Associate:
		return "associate"
	case Bachelor:
		return "bachelor"
	case Master:
		return "master"
	case Doctorate:
		return "doctorate"
	default:
		return "unspecified"
	}
}

// CandidateProfile holds the structured attributes derived from one resume.
// It is built once per document and never mutated afterwards.
type CandidateProfile struct {
	Skills          []string
	ExperienceYears float64
	// Education lists the distinct levels found, highest first.
	Education []EducationLevel
}

// HighestEducation returns the top attained level, or LevelUnspecified
// when the profile carries no education signal.
func (p CandidateProfile) HighestEducation() EducationLevel {
	if len(p.Education) == 0 {
		return LevelUnspecified
	}
	return p.Education[0]
}

func (p CandidateProfile) Validate() error {
	if p.ExperienceYears < 0 {
		return &ValidationError{
			Field:  "experience_years",
			Reason: fmt.Sprintf("must be non-negative, got %v", p.ExperienceYears),
		}
	}
	return nil
}

// JobRequirement holds the structured attributes derived from one job
// description. Immutable once parsed.
type JobRequirement struct {
	RequiredSkills     []string
	PreferredSkills    []string
	MinExperienceYears float64
	// MinEducation is LevelUnspecified when the job states no minimum.
	MinEducation EducationLevel
}

func (j JobRequirement) Validate() error {
	if j.MinExperienceYears < 0 {
		return &ValidationError{
			Field:  "min_experience_years",
			Reason: fmt.Sprintf("must be non-negative, got %v", j.MinExperienceYears),
		}
	}
	return nil
}

// SkillDetail breaks the skill comparison down for presentation. The
// slices are sorted and never mutated after creation.
type SkillDetail struct {
	RequiredMatches  []string
	MissingRequired  []string
	PreferredMatches []string
}

// ValidationError reports an internal invariant violation on a named
// field. Offending values are never silently coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NormalizeSkills lowercases, trims, collapses inner whitespace,
// deduplicates and sorts the provided skill terms.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		clean := strings.Join(strings.Fields(strings.ToLower(skill)), " ")
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	sort.Strings(out)
	return out
}
