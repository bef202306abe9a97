package profile

import "skillswap/internal/domain"

type UpdateProfileRequest struct {
	Name     *string `form:"name" binding:"omitempty,max=100"`
	Bio      *string `form:"bio" binding:"omitempty,max=1000"`
	Location *string `form:"location" binding:"omitempty,max=100"`

	// PhotoPath is set by the handler after the upload is stored.
	PhotoPath *string `form:"-"`
}

type PublicProfile struct {
	User           *domain.User    `json:"user"`
	Profile        *domain.Profile `json:"profile"`
	AvgRating      float64         `json:"avg_rating"`
	TotalRatings   int64           `json:"total_ratings"`
	CompletedSwaps int64           `json:"completed_swaps"`
	SkillsOffered  []domain.Skill  `json:"skills_offered"`
	SkillsWanted   []domain.Skill  `json:"skills_wanted"`
}
