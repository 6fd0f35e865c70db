// Package explain turns numeric match scores into qualitative verdicts.
// Output is fully deterministic: the narrative is rendered from a fixed
// template and the recommendation is keyed off the band alone.
package explain

import (
	"fmt"
	"strings"
	"text/template"

	_ "embed"

	"github.com/spigell/resume-matcher/internal/match"
)

// Band is the qualitative verdict derived from the overall score.
type Band int

const (
	Poor Band = iota
	Fair
	Strong
	Excellent
)

// Classify maps an overall score onto its band. Boundaries are strict:
// exactly 85.0 is Excellent, 84.99 is Strong.
func Classify(score float64) Band {
	switch {
	case score >= 85:
		return Excellent
	case score >= 70:
		return Strong
	case score >= 50:
		return Fair
	default:
		return Poor
	}
}

func (b Band) String() string {
	switch b {
	case Excellent:
		return "Excellent"
	case Strong:
		return "Strong"
	case Fair:
		return "Fair"
	default:
		return "Poor"
	}
}

// Verdict returns the one-line assessment for the band.
func (b Band) Verdict() string {
	switch b {
	case Excellent:
		return "strongly aligned with the job requirements"
	case Strong:
		return "meets most of the job requirements"
	case Fair:
		return "partially aligned with notable gaps"
	default:
		return "weakly aligned with the job requirements"
	}
}

// Recommendation returns the fixed next-step sentence for the band.
func (b Band) Recommendation() string {
	switch b {
	case Excellent:
		return "Recommend scheduling an interview immediately."
	case Strong:
		return "Strong candidate, recommend a screening interview."
	case Fair:
		return "Consider after comparing against other candidates."
	default:
		return "Not recommended for this role."
	}
}

//go:embed narrative.tmpl
var narrativeTemplate string

const (
	maxStrengths = 5
	maxGaps      = 3
)

// Generator renders the templated narrative for a scored match.
type Generator struct {
	tmpl *template.Template
}

func NewGenerator() *Generator {
	tmpl := template.Must(template.New("narrative").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(narrativeTemplate))
	return &Generator{tmpl: tmpl}
}

// Explain classifies the overall score and renders the narrative plus the
// band recommendation. Strength and gap lists are bounded; empty lists
// render as an explicit "none".
func (g *Generator) Explain(overall float64, detail match.SkillDetail) (string, string, error) {
	band := Classify(overall)

	data := struct {
		Band      string
		Score     float64
		Verdict   string
		Strengths []string
		Gaps      []string
	}{
		Band:      band.String(),
		Score:     overall,
		Verdict:   band.Verdict(),
		Strengths: bounded(detail.RequiredMatches, maxStrengths),
		Gaps:      bounded(detail.MissingRequired, maxGaps),
	}

	var sb strings.Builder
	if err := g.tmpl.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render narrative: %w", err)
	}

	return sb.String(), band.Recommendation(), nil
}

func bounded(items []string, limit int) []string {
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}
