package services

import (
	"context"
	"strings"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

func (s *MessageService) Broadcast(ctx context.Context, adminID uint, req types.BroadcastRequest) (*models.PlatformMessage, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Message)
	if title == "" || body == "" {
		return nil, utils.Validation("title and message are required")
	}
	if !validMessageType(req.Type) {
		return nil, utils.Validation("type must be one of: " + strings.Join(models.PlatformMessageTypes, ", "))
	}

	msg := models.PlatformMessage{
		Title:     title,
		Message:   body,
		Type:      req.Type,
		CreatedBy: adminID,
		IsActive:  true,
	}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	zap.L().Info("platform message broadcast", zap.Uint("message_id", msg.ID), zap.Uint("admin_id", adminID))
	return &msg, nil
}

// Active returns active messages newest first and how many are newer than lastSeenID.
func (s *MessageService) Active(ctx context.Context, lastSeenID uint) ([]models.PlatformMessage, int, error) {
	var msgs []models.PlatformMessage
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, 0, err
	}

	unread := 0
	for _, m := range msgs {
		if m.ID > lastSeenID {
			unread++
		}
	}
	return msgs, unread, nil
}

func validMessageType(t string) bool {
	for _, allowed := range models.PlatformMessageTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
