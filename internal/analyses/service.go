package analyses

import (
	"math"
	"strings"

	"career-navigator/internal/analyses/recommendations"
	"career-navigator/internal/skills"
)

// Service runs skill gap analyses against a role catalog.
type Service struct {
	Catalog   *skills.Catalog
	Extractor *skills.Extractor
	Resolve   func(skill string) recommendations.Bundle
}

// NewService builds a Service whose vocabulary is every required skill of the
// catalog plus every skill with a curated recommendation.
func NewService(catalog *skills.Catalog) *Service {
	if catalog == nil {
		catalog = skills.DefaultCatalog()
	}
	vocab := skills.NewVocabulary(catalog.RequiredSkills(), recommendations.CuratedSkills())
	return &Service{
		Catalog:   catalog,
		Extractor: skills.NewExtractor(vocab),
		Resolve:   recommendations.Resolve,
	}
}

// LookupRole validates a role selection from the client.
func (s *Service) LookupRole(name string) (skills.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == roleSelectPlaceholder {
		return skills.Role{}, ErrRoleRequired
	}
	role, ok := s.Catalog.Role(name)
	if !ok {
		return skills.Role{}, ErrUnknownRole
	}
	return role, nil
}

// AnalyzeRole resolves roleName in the catalog and analyzes text against it.
// An unknown role has no required skills.
func (s *Service) AnalyzeRole(text, roleName string) Result {
	role, ok := s.Catalog.Role(roleName)
	if !ok {
		role = skills.Role{Name: roleName}
	}
	return s.Analyze(text, role)
}

// Analyze compares the skills found in text with the role's required skills.
// Matched and missing keep the role's order. Empty text is not an error here.
func (s *Service) Analyze(text string, role skills.Role) Result {
	extracted := s.Extractor.Extract(text)
	have := make(map[string]struct{}, len(extracted))
	for _, sk := range extracted {
		have[sk] = struct{}{}
	}

	matched := make([]string, 0, len(role.Skills))
	missing := make([]string, 0, len(role.Skills))
	for _, req := range role.Skills {
		if _, ok := have[req]; ok {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	resolve := s.Resolve
	if resolve == nil {
		resolve = recommendations.Resolve
	}
	recs := make(map[string]recommendations.Bundle, len(missing))
	for _, sk := range missing {
		recs[sk] = resolve(sk)
	}

	return Result{
		JobRole:         role.Name,
		ExtractedSkills: extracted,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Recommendations: recs,
		Score:           Score(len(matched), len(missing)),
	}
}

// Score is the rounded percentage of matched skills; 0 when nothing is required.
func Score(matched, missing int) int {
	total := matched + missing
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}
