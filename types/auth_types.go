package types

type RegisterRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Location      *string  `json:"location"`
	Availability  *string  `json:"availability"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	ProfilePhoto  *string  `json:"profilePhoto"`
	IsPublic      *bool    `json:"isPublic"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
