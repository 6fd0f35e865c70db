// Package report assembles the terminal MatchResult record handed to
// presentation layers. Scores stay at full precision until Rounded is
// applied at the serialization boundary.
package report

import (
	"fmt"
	"math"

	"github.com/spigell/resume-matcher/internal/explain"
	"github.com/spigell/resume-matcher/internal/match"
	"github.com/spigell/resume-matcher/internal/scoring"
)

// SkillDetails is the serializable form of the skill comparison, with
// ordered lists for stable presentation.
type SkillDetails struct {
	RequiredMatches  []string `json:"required_matches"`
	MissingRequired  []string `json:"missing_required"`
	PreferredMatches []string `json:"preferred_matches"`
}

// Summary carries per-component human-readable coverage strings.
type Summary struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Semantic   string `json:"semantic"`
}

// MatchResult is the immutable output record for one (candidate, job)
// pair. It is never reused across pairs.
type MatchResult struct {
	OverallScore    float64      `json:"overall_score"`
	SkillScore      float64      `json:"skill_score"`
	ExperienceScore float64      `json:"experience_score"`
	EducationScore  float64      `json:"education_score"`
	SemanticScore   float64      `json:"semantic_score"`
	Band            string       `json:"band"`
	AIExplanation   string       `json:"ai_explanation"`
	Recommendation  string       `json:"recommendation"`
	SkillDetails    SkillDetails `json:"skill_details"`
	Summary         Summary      `json:"match_summary"`
}

// Build assembles the result record from scored components. The skill
// score folds the required and preferred sub-scores together in
// proportion to their configured weights.
func Build(candidate match.CandidateProfile, job match.JobRequirement, scores scoring.Components, weights scoring.WeightConfig, detail match.SkillDetail, narrative, recommendation string) MatchResult {
	return MatchResult{
		OverallScore:    scores.Overall,
		SkillScore:      skillScore(scores, weights),
		ExperienceScore: scores.Experience,
		EducationScore:  scores.Education,
		SemanticScore:   scores.Semantic,
		Band:            explain.Classify(scores.Overall).String(),
		AIExplanation:   narrative,
		Recommendation:  recommendation,
		SkillDetails: SkillDetails{
			RequiredMatches:  detail.RequiredMatches,
			MissingRequired:  detail.MissingRequired,
			PreferredMatches: detail.PreferredMatches,
		},
		Summary: buildSummary(candidate, job, scores, detail),
	}
}

// Rounded returns a copy with every score rounded to one decimal place
// for presentation. The receiver keeps full precision.
func (r MatchResult) Rounded() MatchResult {
	r.OverallScore = round1(r.OverallScore)
	r.SkillScore = round1(r.SkillScore)
	r.ExperienceScore = round1(r.ExperienceScore)
	r.EducationScore = round1(r.EducationScore)
	r.SemanticScore = round1(r.SemanticScore)
	return r
}

func skillScore(scores scoring.Components, weights scoring.WeightConfig) float64 {
	total := weights.RequiredSkills + weights.PreferredSkills
	if total <= 0 {
		return (scores.RequiredSkills + scores.PreferredSkills) / 2
	}
	return (weights.RequiredSkills*scores.RequiredSkills + weights.PreferredSkills*scores.PreferredSkills) / total
}

func buildSummary(candidate match.CandidateProfile, job match.JobRequirement, scores scoring.Components, detail match.SkillDetail) Summary {
	education := "meets requirement"
	if scores.Education < 100 {
		education = "below requirement"
	}
	if job.MinEducation == match.LevelUnspecified {
		education = "no requirement"
	}

	return Summary{
		Skills: fmt.Sprintf("%d/%d required skills matched",
			len(detail.RequiredMatches),
			len(detail.RequiredMatches)+len(detail.MissingRequired),
		),
		Experience: fmt.Sprintf("%g/%g years", candidate.ExperienceYears, job.MinExperienceYears),
		Education:  education,
		Semantic:   fmt.Sprintf("%.1f%%", scores.Semantic),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
