package domain

import "time"

// Rating is one feedback record per completed swap per rater.
// Rows are never updated or deleted.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SwapID    int64     `json:"swap_id" gorm:"uniqueIndex:idx_ratings_swap_rater"`
	RaterID   int64     `json:"rater_id" gorm:"uniqueIndex:idx_ratings_swap_rater"`
	RatedID   int64     `json:"rated_id" gorm:"index"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Review    string    `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	Rater *User        `json:"rater,omitempty" gorm:"foreignKey:RaterID"`
	Rated *User        `json:"rated,omitempty" gorm:"foreignKey:RatedID"`
	Swap  *SwapRequest `json:"swap,omitempty" gorm:"foreignKey:SwapID"`
}
