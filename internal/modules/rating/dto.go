package rating

import "skillswap/internal/domain"

type SubmitRatingRequest struct {
	SwapID  int64  `json:"swap_id" binding:"required"`
	RatedID int64  `json:"rated_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Review  string `json:"review" binding:"omitempty,max=500"`
}

type UserRatingsResponse struct {
	Ratings   []domain.Rating `json:"ratings"`
	AvgRating float64         `json:"avg_rating"`
	Total     int64           `json:"total"`
}
