package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID              uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
	Name            string                      `gorm:"not null" json:"name"`
	Email           string                      `gorm:"uniqueIndex;not null" json:"email"`
	Password        string                      `gorm:"not null" json:"-"` // Don't expose password in JSON
	Location        *string                     `json:"location"`
	Availability    *string                     `json:"availability"`
	SkillsOffered   datatypes.JSONSlice[string] `json:"skillsOffered"`
	SkillsWanted    datatypes.JSONSlice[string] `json:"skillsWanted"`
	ProfilePhoto    *string                     `json:"profilePhoto"`
	ProfilePhotoKey *string                     `json:"-"`
	Rating          float64                     `gorm:"default:0;not null" json:"rating"`
	IsPublic        bool                        `gorm:"not null" json:"isPublic"`
	IsAdmin         bool                        `gorm:"default:false;not null" json:"isAdmin"`
	IsBanned        bool                        `gorm:"default:false;not null" json:"isBanned"`
}

// UserSummary is the identity shown for the other side of a swap or review.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Public returns a copy safe to serialize, with nil skill lists replaced by empty ones.
func (u User) Public() User {
	u.Password = ""
	if u.SkillsOffered == nil {
		u.SkillsOffered = datatypes.JSONSlice[string]{}
	}
	if u.SkillsWanted == nil {
		u.SkillsWanted = datatypes.JSONSlice[string]{}
	}
	return u
}

func PublicUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
