package types

import "time"

type RemoveSkillRequest struct {
	Skill string `json:"skill" binding:"required"`
	Type  string `json:"type" binding:"required,skilltype"`
}

// SkillEntry is one (user, skill, direction) tuple in the moderation listing.
type SkillEntry struct {
	UserID    uint   `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Type      string `json:"type"` // offered or wanted
	Skill     string `json:"skill"`
}

type BroadcastRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=info warning update maintenance"`
}

type MessagesQuery struct {
	Since uint `form:"since"`
}

type UserReport struct {
	TotalUsers    int64     `json:"totalUsers"`
	ActiveUsers   int64     `json:"activeUsers"`
	BannedUsers   int64     `json:"bannedUsers"`
	PublicUsers   int64     `json:"publicUsers"`
	AdminUsers    int64     `json:"adminUsers"`
	NewUsers7Days int64     `json:"newUsersLast7Days"`
	AverageRating float64   `json:"averageRating"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

type SwapReport struct {
	TotalSwaps     int64            `json:"totalSwaps"`
	ByStatus       map[string]int64 `json:"byStatus"`
	CompletionRate float64          `json:"completionRate"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}

type FeedbackReport struct {
	TotalFeedback int64         `json:"totalFeedback"`
	AverageRating float64       `json:"averageRating"`
	Distribution  map[int]int64 `json:"distribution"`
	GeneratedAt   time.Time     `json:"generatedAt"`
}
