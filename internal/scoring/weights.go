package scoring

import (
	"fmt"
	"math"
)

// sumTolerance bounds the allowed drift of the weight sum from 1.0.
const sumTolerance = 1e-6

// WeightConfig assigns the relative importance of each score component.
// Weights must be non-negative and sum to 1.0 within tolerance; a config
// that violates this fails construction instead of being renormalized
// silently. Use NormalizedWeights when renormalization is wanted.
type WeightConfig struct {
	RequiredSkills  float64 `mapstructure:"required-skills"`
	PreferredSkills float64 `mapstructure:"preferred-skills"`
	Experience      float64 `mapstructure:"experience"`
	Education       float64 `mapstructure:"education"`
	Semantic        float64 `mapstructure:"semantic"`
}

// DefaultWeights returns the built-in weight distribution.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		RequiredSkills:  0.35,
		PreferredSkills: 0.20,
		Experience:      0.25,
		Education:       0.15,
		Semantic:        0.05,
	}
}

// NewWeightConfig builds a validated weight configuration.
func NewWeightConfig(required, preferred, experience, education, semantic float64) (WeightConfig, error) {
	w := WeightConfig{
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Experience:      experience,
		Education:       education,
		Semantic:        semantic,
	}
	if err := w.Validate(); err != nil {
		return WeightConfig{}, err
	}
	return w, nil
}

// Sum returns the total of all weights.
func (w WeightConfig) Sum() float64 {
	return w.RequiredSkills + w.PreferredSkills + w.Experience + w.Education + w.Semantic
}

// Validate checks that no weight is negative and the sum is 1.0 within
// tolerance.
func (w WeightConfig) Validate() error {
	for name, v := range w.byName() {
		if v < 0 {
			return &ConfigError{Reason: fmt.Sprintf("weight %s is negative: %v", name, v)}
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > sumTolerance {
		return &ConfigError{Reason: fmt.Sprintf("weights must sum to 1.0, got %.6f", sum)}
	}
	return nil
}

// NormalizedWeights divides each weight by the current sum so the result
// validates. It errors when the sum is zero or any weight is negative,
// since there is nothing sensible to scale.
func NormalizedWeights(w WeightConfig) (WeightConfig, error) {
	for name, v := range w.byName() {
		if v < 0 {
			return WeightConfig{}, &ConfigError{Reason: fmt.Sprintf("weight %s is negative: %v", name, v)}
		}
	}
	sum := w.Sum()
	if sum <= 0 {
		return WeightConfig{}, &ConfigError{Reason: "weights sum to zero, nothing to normalize"}
	}
	return WeightConfig{
		RequiredSkills:  w.RequiredSkills / sum,
		PreferredSkills: w.PreferredSkills / sum,
		Experience:      w.Experience / sum,
		Education:       w.Education / sum,
		Semantic:        w.Semantic / sum,
	}, nil
}

func (w WeightConfig) byName() map[string]float64 {
	return map[string]float64{
		"required-skills":  w.RequiredSkills,
		"preferred-skills": w.PreferredSkills,
		"experience":       w.Experience,
		"education":        w.Education,
		"semantic":         w.Semantic,
	}
}

// ConfigError reports an unusable scoring configuration detected at
// construction time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "scoring config: " + e.Reason
}
