package analyses

import (
	"career-navigator/internal/analyses/recommendations"
	"career-navigator/internal/skills"
)

const allMatchedMessage = "All required skills matched! Focus on projects and interviews."

// SkillRecommendation pairs a missing skill with its learning bundle.
type SkillRecommendation struct {
	Skill string `json:"skill"`
	recommendations.Bundle
}

// ResultResponse is the outward-facing representation of an analysis.
type ResultResponse struct {
	JobRole         string                `json:"jobRole"`
	Score           int                   `json:"score"`
	ExtractedSkills []string              `json:"extractedSkills"`
	MatchedSkills   []string              `json:"matchedSkills"`
	MissingSkills   []string              `json:"missingSkills"`
	Recommendations []SkillRecommendation `json:"recommendations"`
	Message         string                `json:"message,omitempty"`
}

// RoleResponse describes one selectable role.
type RoleResponse struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

func toResponse(r Result) ResultResponse {
	recs := make([]SkillRecommendation, 0, len(r.MissingSkills))
	for _, sk := range r.MissingSkills {
		recs = append(recs, SkillRecommendation{Skill: sk, Bundle: r.Recommendations[sk]})
	}
	resp := ResultResponse{
		JobRole:         r.JobRole,
		Score:           r.Score,
		ExtractedSkills: r.ExtractedSkills,
		MatchedSkills:   r.MatchedSkills,
		MissingSkills:   r.MissingSkills,
		Recommendations: recs,
	}
	if r.AllMatched() {
		resp.Message = allMatchedMessage
	}
	return resp
}

func toRoleResponses(roles []skills.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleResponse{Name: r.Name, Skills: r.Skills})
	}
	return out
}
