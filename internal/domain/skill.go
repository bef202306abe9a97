package domain

import "time"

type SkillType string

const (
	SkillOffer   SkillType = "offer"
	SkillRequest SkillType = "request"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Skill struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"index"`
	CategoryID  *int64     `json:"category_id,omitempty"`
	SkillName   string     `json:"skill_name"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Type        SkillType  `json:"type"`
	Level       SkillLevel `json:"level" gorm:"default:'intermediate'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
