package analyses

import "career-navigator/internal/analyses/recommendations"

// Result is the outcome of one gap analysis. It is computed per request and never stored.
type Result struct {
	JobRole         string
	ExtractedSkills []string
	MatchedSkills   []string
	MissingSkills   []string
	Recommendations map[string]recommendations.Bundle
	Score           int
}

// AllMatched reports whether the role had requirements and none are missing.
func (r Result) AllMatched() bool {
	return len(r.MissingSkills) == 0 && len(r.MatchedSkills) > 0
}
