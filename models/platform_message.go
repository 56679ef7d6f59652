package models

import "time"

var PlatformMessageTypes = []string{"info", "warning", "update", "maintenance"}

type PlatformMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	Type      string    `gorm:"not null;default:'info'" json:"type"` // info, warning, update, maintenance
	CreatedBy uint      `gorm:"not null" json:"createdBy"`
	IsActive  bool      `gorm:"not null" json:"isActive"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}
