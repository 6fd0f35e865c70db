package report

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"time"
)

// Entry pairs one candidate name with its match result.
type Entry struct {
	Name   string      `json:"name"`
	Result MatchResult `json:"result"`
}

// Results collects the outcomes of a batch run against a single job.
type Results struct {
	GeneratedAt time.Time `json:"generated_at"`
	Entries     []Entry   `json:"entries"`
}

func NewResults() *Results {
	return &Results{GeneratedAt: time.Now().UTC()}
}

func (r *Results) Add(name string, result MatchResult) {
	r.Entries = append(r.Entries, Entry{Name: name, Result: result})
}

func (r *Results) Len() int {
	return len(r.Entries)
}

// SortByScore orders entries by overall score descending; ties keep a
// stable name order.
func (r *Results) SortByScore() {
	sort.SliceStable(r.Entries, func(i, j int) bool {
		a, b := r.Entries[i], r.Entries[j]
		if a.Result.OverallScore != b.Result.OverallScore {
			return a.Result.OverallScore > b.Result.OverallScore
		}
		return a.Name < b.Name
	})
}

// ReportByBand groups the entries by verdict band for quick triage.
func (r *Results) ReportByBand() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, entry := range r.Entries {
		rounded := entry.Result.Rounded()
		report[rounded.Band] = append(report[rounded.Band], map[string]string{
			"name":           entry.Name,
			"overall_score":  formatScore(rounded.OverallScore),
			"skills":         rounded.Summary.Skills,
			"experience":     rounded.Summary.Experience,
			"recommendation": rounded.Recommendation,
		})
	}
	return report
}

// DumpToTmpFile writes the presentation-rounded results to a temp JSON
// file and returns its name.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "match_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	out := Results{GeneratedAt: r.GeneratedAt, Entries: make([]Entry, 0, len(r.Entries))}
	for _, entry := range r.Entries {
		out.Entries = append(out.Entries, Entry{Name: entry.Name, Result: entry.Result.Rounded()})
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
