package models

import "time"

const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

type SwapRequest struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	SenderID       uint      `gorm:"not null;index" json:"senderId"`
	ReceiverID     uint      `gorm:"not null;index" json:"receiverId"`
	OfferedSkill   string    `gorm:"not null" json:"offeredSkill"`
	RequestedSkill string    `gorm:"not null" json:"requestedSkill"`
	Status         string    `gorm:"not null;default:'pending'" json:"status"` // pending, accepted, rejected, completed
	Message        *string   `json:"message"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (s *SwapRequest) IsParticipant(userID uint) bool {
	return s.SenderID == userID || s.ReceiverID == userID
}

// Counterparty returns the participant that is not userID.
func (s *SwapRequest) Counterparty(userID uint) uint {
	if s.SenderID == userID {
		return s.ReceiverID
	}
	return s.SenderID
}

// SwapWithUsers is the joined view returned by swap listings.
type SwapWithUsers struct {
	ID             uint        `json:"id"`
	OfferedSkill   string      `json:"offeredSkill"`
	RequestedSkill string      `json:"requestedSkill"`
	Status         string      `json:"status"`
	Message        *string     `json:"message"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Sender         UserSummary `json:"sender"`
	Receiver       UserSummary `json:"receiver"`
}

func (s *SwapRequest) WithUsers() SwapWithUsers {
	view := SwapWithUsers{
		ID:             s.ID,
		OfferedSkill:   s.OfferedSkill,
		RequestedSkill: s.RequestedSkill,
		Status:         s.Status,
		Message:        s.Message,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Sender:         UserSummary{ID: s.SenderID},
		Receiver:       UserSummary{ID: s.ReceiverID},
	}
	if s.Sender != nil {
		view.Sender = s.Sender.Summary()
	}
	if s.Receiver != nil {
		view.Receiver = s.Receiver.Summary()
	}
	return view
}
