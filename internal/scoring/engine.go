// Package scoring computes the weighted multi-factor match score between
// a candidate profile and a job requirement. The engine is a pure
// function of its inputs: identical inputs always produce identical
// component and overall scores.
package scoring

import (
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/match"
)

// Components carries the full-precision sub-scores and the weighted
// overall score, all bounded to [0,100]. Rounding happens at the
// presentation boundary, never here.
type Components struct {
	RequiredSkills  float64
	PreferredSkills float64
	Experience      float64
	Education       float64
	Semantic        float64
	Overall         float64
}

// Engine aggregates the component scores under a validated weight
// configuration. It holds no mutable state and is safe for concurrent
// use across (candidate, job) pairs.
type Engine struct {
	weights    WeightConfig
	components []Component
	logger     *zap.Logger
}

// NewEngine validates the weights and builds the engine. The logger is
// optional; scoring output never depends on it.
func NewEngine(weights WeightConfig, logger *zap.Logger) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		weights:    weights,
		components: defaultComponents(),
		logger:     logger,
	}, nil
}

// Weights returns the engine's weight configuration.
func (e *Engine) Weights() WeightConfig { return e.weights }

// Score computes the component and overall scores for one
// (candidate, job) pair. A similarity outside [-1,1] is clamped, since a
// single faulty row from the similarity collaborator must not stop batch
// processing. Invariant violations on the inputs fail with a
// *match.ValidationError.
func (e *Engine) Score(candidate match.CandidateProfile, job match.JobRequirement, similarity float64) (Components, match.SkillDetail, error) {
	if err := candidate.Validate(); err != nil {
		return Components{}, match.SkillDetail{}, err
	}
	if err := job.Validate(); err != nil {
		return Components{}, match.SkillDetail{}, err
	}

	detail := MatchSkills(candidate.Skills, job)
	in := Inputs{
		Candidate:  candidate,
		Job:        job,
		Detail:     detail,
		Similarity: clamp(similarity, -1, 1),
	}

	scores := make(map[string]float64, len(e.components))
	overall := 0.0
	for _, component := range e.components {
		score := clamp(component.Score(in), 0, 100)
		scores[component.Name()] = score
		overall += component.Weight(e.weights) * score

		if e.logger != nil {
			e.logger.Debug("score component",
				zap.String("name", component.Name()),
				zap.Float64("score", score),
				zap.Float64("weight", component.Weight(e.weights)),
			)
		}
	}

	out := Components{
		RequiredSkills:  scores["required_skills"],
		PreferredSkills: scores["preferred_skills"],
		Experience:      scores["experience"],
		Education:       scores["education"],
		Semantic:        scores["semantic"],
		Overall:         clamp(overall, 0, 100),
	}

	if e.logger != nil {
		e.logger.Debug("score aggregated", zap.Float64("overall", out.Overall))
	}

	return out, detail, nil
}
