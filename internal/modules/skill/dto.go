package skill

type CreateSkillRequest struct {
	SkillName   string `json:"skill_name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Type        string `json:"type" binding:"required,oneof=offer request"`
	Level       string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CategoryID  *int64 `json:"category_id" binding:"omitempty"`
}

type UpdateSkillRequest struct {
	SkillName   *string `json:"skill_name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Type        *string `json:"type" binding:"omitempty,oneof=offer request"`
	Level       *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CategoryID  *int64  `json:"category_id" binding:"omitempty"`
}
