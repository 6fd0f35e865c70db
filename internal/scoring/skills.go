package scoring

import (
	"sort"

	"github.com/spigell/resume-matcher/internal/match"
)

// MatchSkills compares the candidate's skills against the job's required
// and preferred sets. All terms are normalized before comparison and the
// resulting slices are sorted for stable presentation.
func MatchSkills(candidateSkills []string, job match.JobRequirement) match.SkillDetail {
	candidate := toSet(match.NormalizeSkills(candidateSkills))
	required := match.NormalizeSkills(job.RequiredSkills)
	preferred := match.NormalizeSkills(job.PreferredSkills)

	detail := match.SkillDetail{
		RequiredMatches:  make([]string, 0, len(required)),
		MissingRequired:  make([]string, 0, len(required)),
		PreferredMatches: make([]string, 0, len(preferred)),
	}

	for _, skill := range required {
		if _, ok := candidate[skill]; ok {
			detail.RequiredMatches = append(detail.RequiredMatches, skill)
		} else {
			detail.MissingRequired = append(detail.MissingRequired, skill)
		}
	}
	for _, skill := range preferred {
		if _, ok := candidate[skill]; ok {
			detail.PreferredMatches = append(detail.PreferredMatches, skill)
		}
	}

	sort.Strings(detail.RequiredMatches)
	sort.Strings(detail.MissingRequired)
	sort.Strings(detail.PreferredMatches)
	return detail
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[skill] = struct{}{}
	}
	return set
}
