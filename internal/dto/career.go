package dto

import "careerpath/internal/domain"

// CareerResponse is a catalog career on the wire.
type CareerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	RequiredSkills []string `json:"required_skills"`
	Description    string   `json:"description,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
}

// CareersToResponse converts the catalog for the wire.
func CareersToResponse(careers []domain.Career) []CareerResponse {
	out := make([]CareerResponse, 0, len(careers))
	for _, c := range careers {
		out = append(out, CareerResponse{
			ID:             c.ID,
			Name:           c.Name,
			RequiredSkills: c.RequiredSkills,
			Description:    c.Description,
			SalaryRange:    c.SalaryRange,
		})
	}
	return out
}
