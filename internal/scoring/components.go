package scoring

import (
	"github.com/spigell/resume-matcher/internal/match"
)

// Component computes one sub-score of the overall match. Every component
// returns a value in [0,100] and must be a pure function of its inputs.
type Component interface {
	Name() string
	Weight(w WeightConfig) float64
	Score(in Inputs) float64
}

// Inputs aggregates everything a component may need. Similarity is the
// externally supplied scalar, already clamped to [-1,1] by the engine.
type Inputs struct {
	Candidate  match.CandidateProfile
	Job        match.JobRequirement
	Detail     match.SkillDetail
	Similarity float64
}

func defaultComponents() []Component {
	return []Component{
		requiredSkillsComponent{},
		preferredSkillsComponent{},
		experienceComponent{},
		educationComponent{},
		semanticComponent{},
	}
}

type requiredSkillsComponent struct{}

func (requiredSkillsComponent) Name() string { return "required_skills" }

func (requiredSkillsComponent) Weight(w WeightConfig) float64 { return w.RequiredSkills }

// A job with no required skills is trivially satisfied.
func (requiredSkillsComponent) Score(in Inputs) float64 {
	total := len(in.Detail.RequiredMatches) + len(in.Detail.MissingRequired)
	if total == 0 {
		return 100
	}
	return float64(len(in.Detail.RequiredMatches)) / float64(total) * 100
}

type preferredSkillsComponent struct{}

func (preferredSkillsComponent) Name() string { return "preferred_skills" }

func (preferredSkillsComponent) Weight(w WeightConfig) float64 { return w.PreferredSkills }

func (preferredSkillsComponent) Score(in Inputs) float64 {
	total := len(match.NormalizeSkills(in.Job.PreferredSkills))
	if total == 0 {
		return 100
	}
	return float64(len(in.Detail.PreferredMatches)) / float64(total) * 100
}

type experienceComponent struct{}

func (experienceComponent) Name() string { return "experience" }

func (experienceComponent) Weight(w WeightConfig) float64 { return w.Experience }

// Experience below the minimum is penalized linearly, never a hard fail.
func (experienceComponent) Score(in Inputs) float64 {
	min := in.Job.MinExperienceYears
	if min <= 0 {
		return 100
	}
	ratio := in.Candidate.ExperienceYears / min
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

type educationComponent struct{}

func (educationComponent) Name() string { return "education" }

func (educationComponent) Weight(w WeightConfig) float64 { return w.Education }

// Under-qualification on paper is a soft signal: one ordinal level below
// the minimum scores 70, two or more below scores 40. A missing education
// section counts as ordinal level zero.
func (educationComponent) Score(in Inputs) float64 {
	required := in.Job.MinEducation
	if required == match.LevelUnspecified {
		return 100
	}

	attained := in.Candidate.HighestEducation()
	switch gap := int(required) - int(attained); {
	case gap <= 0:
		return 100
	case gap == 1:
		return 70
	default:
		return 40
	}
}

type semanticComponent struct{}

func (semanticComponent) Name() string { return "semantic" }

func (semanticComponent) Weight(w WeightConfig) float64 { return w.Semantic }

// Rescales cosine similarity from [-1,1] onto [0,100].
func (semanticComponent) Score(in Inputs) float64 {
	return clamp((in.Similarity+1)/2*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
