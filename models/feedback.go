package models

import "time"

type Feedback struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	SwapID     uint      `gorm:"not null;index" json:"swapId"`
	ReviewerID uint      `gorm:"not null" json:"reviewerId"`
	RevieweeID uint      `gorm:"not null;index" json:"revieweeId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `json:"comment"`

	Swap     *SwapRequest `gorm:"foreignKey:SwapID" json:"-"`
	Reviewer *User        `gorm:"foreignKey:ReviewerID" json:"-"`
	Reviewee *User        `gorm:"foreignKey:RevieweeID" json:"-"`
}

func (Feedback) TableName() string { return "feedback" }

type SwapSummary struct {
	ID             uint   `json:"id"`
	OfferedSkill   string `json:"offeredSkill"`
	RequestedSkill string `json:"requestedSkill"`
}

type FeedbackWithDetails struct {
	ID          uint        `json:"id"`
	Rating      int         `json:"rating"`
	Comment     *string     `json:"comment"`
	CreatedAt   time.Time   `json:"createdAt"`
	Reviewer    UserSummary `json:"reviewer"`
	SwapRequest SwapSummary `json:"swapRequest"`
}

func (f *Feedback) WithDetails() FeedbackWithDetails {
	view := FeedbackWithDetails{
		ID:          f.ID,
		Rating:      f.Rating,
		Comment:     f.Comment,
		CreatedAt:   f.CreatedAt,
		Reviewer:    UserSummary{ID: f.ReviewerID},
		SwapRequest: SwapSummary{ID: f.SwapID},
	}
	if f.Reviewer != nil {
		view.Reviewer = f.Reviewer.Summary()
	}
	if f.Swap != nil {
		view.SwapRequest.OfferedSkill = f.Swap.OfferedSkill
		view.SwapRequest.RequestedSkill = f.Swap.RequestedSkill
	}
	return view
}
