package report

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/spigell/resume-matcher/internal/match"
	"github.com/spigell/resume-matcher/internal/scoring"
)

func sampleResult() MatchResult {
	candidate := match.CandidateProfile{
		Skills:          []string{"python", "sql", "aws"},
		ExperienceYears: 4,
		Education:       []match.EducationLevel{match.Bachelor},
	}
	job := match.JobRequirement{
		RequiredSkills:     []string{"python", "sql", "kubernetes"},
		PreferredSkills:    []string{"docker"},
		MinExperienceYears: 3,
		MinEducation:       match.Bachelor,
	}
	scores := scoring.Components{
		RequiredSkills:  200.0 / 3,
		PreferredSkills: 0,
		Experience:      100,
		Education:       100,
		Semantic:        80,
		Overall:         67.333333333333,
	}
	detail := match.SkillDetail{
		RequiredMatches: []string{"python", "sql"},
		MissingRequired: []string{"kubernetes"},
	}
	return Build(candidate, job, scores, scoring.DefaultWeights(), detail, "narrative", "recommendation")
}

func TestBuildKeepsFullPrecision(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	if math.Abs(result.OverallScore-67.333333333333) > 1e-9 {
		t.Fatalf("expected full precision overall, got %v", result.OverallScore)
	}
	if result.Band != "Fair" {
		t.Fatalf("expected Fair band, got %q", result.Band)
	}

	// skill score folds required and preferred by their weights:
	// (0.35*66.67 + 0.20*0) / 0.55
	want := (0.35 * (200.0 / 3)) / 0.55
	if math.Abs(result.SkillScore-want) > 1e-9 {
		t.Fatalf("expected skill score %v, got %v", want, result.SkillScore)
	}
}

func TestRoundedOneDecimal(t *testing.T) {
	t.Parallel()

	rounded := sampleResult().Rounded()

	if rounded.OverallScore != 67.3 {
		t.Fatalf("expected 67.3, got %v", rounded.OverallScore)
	}
	if rounded.SemanticScore != 80.0 {
		t.Fatalf("expected 80.0, got %v", rounded.SemanticScore)
	}
	for _, v := range []float64{
		rounded.OverallScore, rounded.SkillScore, rounded.ExperienceScore,
		rounded.EducationScore, rounded.SemanticScore,
	} {
		if math.Abs(v*10-math.Round(v*10)) > 1e-9 {
			t.Fatalf("score %v not rounded to one decimal", v)
		}
	}
}

func TestSummaryStrings(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	if result.Summary.Skills != "2/3 required skills matched" {
		t.Fatalf("unexpected skills summary: %q", result.Summary.Skills)
	}
	if result.Summary.Experience != "4/3 years" {
		t.Fatalf("unexpected experience summary: %q", result.Summary.Experience)
	}
	if result.Summary.Education != "meets requirement" {
		t.Fatalf("unexpected education summary: %q", result.Summary.Education)
	}
}

func TestResultsSortByScore(t *testing.T) {
	t.Parallel()

	results := NewResults()
	results.Add("low", MatchResult{OverallScore: 12.5})
	results.Add("high", MatchResult{OverallScore: 91.0})
	results.Add("mid-b", MatchResult{OverallScore: 55.0})
	results.Add("mid-a", MatchResult{OverallScore: 55.0})

	results.SortByScore()

	order := make([]string, 0, results.Len())
	for _, entry := range results.Entries {
		order = append(order, entry.Name)
	}
	want := "high,mid-a,mid-b,low"
	if got := strings.Join(order, ","); got != want {
		t.Fatalf("expected order %s, got %s", want, got)
	}
}

func TestReportByBand(t *testing.T) {
	t.Parallel()

	results := NewResults()
	results.Add("ace", MatchResult{OverallScore: 92, Band: "Excellent"})
	results.Add("meh", MatchResult{OverallScore: 30, Band: "Poor"})
	results.Add("ok", MatchResult{OverallScore: 72, Band: "Strong"})

	report := results.ReportByBand()

	if len(report["Excellent"]) != 1 {
		t.Fatalf("expected one excellent entry, got %d", len(report["Excellent"]))
	}
	entry := report["Excellent"][0]
	if entry["name"] != "ace" {
		t.Fatalf("unexpected name: %q", entry["name"])
	}
	if entry["overall_score"] != "92.0" {
		t.Fatalf("unexpected score: %q", entry["overall_score"])
	}
}

func TestDumpToTmpFileWritesRoundedResults(t *testing.T) {
	t.Parallel()

	results := NewResults()
	results.Add("sample", sampleResult())

	filename, err := results.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Results
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding dump: %v", err)
	}
	if decoded.Len() != 1 {
		t.Fatalf("expected one entry, got %d", decoded.Len())
	}
	if decoded.Entries[0].Result.OverallScore != 67.3 {
		t.Fatalf("expected rounded score in dump, got %v", decoded.Entries[0].Result.OverallScore)
	}
}
