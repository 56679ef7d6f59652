package types

type UpdateProfileRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1"`
	Email         *string   `json:"email" binding:"omitempty,email"`
	Location      *string   `json:"location"`
	Availability  *string   `json:"availability"`
	SkillsOffered *[]string `json:"skillsOffered"`
	SkillsWanted  *[]string `json:"skillsWanted"`
	ProfilePhoto  *string   `json:"profilePhoto"`
	IsPublic      *bool     `json:"isPublic"`
}

type SearchUsersQuery struct {
	Skill        string `form:"skill"`
	Location     string `form:"location"`
	Availability string `form:"availability"`
	Page         int    `form:"page,default=1" binding:"min=1"`
	Limit        int    `form:"limit,default=10" binding:"min=1,max=100"`
}

type TopUsersQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

// TopUser is a leaderboard entry ranked by average rating.
type TopUser struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Location      *string `json:"location"`
	ProfilePhoto  *string `json:"profilePhoto"`
	Rating        float64 `json:"rating"`
	FeedbackCount int64   `json:"feedbackCount"`
	Rank          int     `json:"rank"`
}
