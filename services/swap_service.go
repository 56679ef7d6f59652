package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/skill-swap/api-go/metrics"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SwapService struct {
	DB *gorm.DB
}

func NewSwapService(db *gorm.DB) *SwapService {
	return &SwapService{DB: db}
}

func (s *SwapService) Create(ctx context.Context, senderID uint, req types.SendSwapRequest) (*models.SwapRequest, error) {
	offered := strings.TrimSpace(req.OfferedSkill)
	requested := strings.TrimSpace(req.RequestedSkill)
	if req.ReceiverID == 0 || offered == "" || requested == "" {
		return nil, utils.Validation("receiverId, offeredSkill and requestedSkill are required")
	}
	if senderID == req.ReceiverID {
		return nil, utils.Validation("cannot send swap request to yourself")
	}

	var receiverCount int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", req.ReceiverID).Count(&receiverCount).Error; err != nil {
		return nil, err
	}
	if receiverCount == 0 {
		return nil, utils.NotFound("receiver not found")
	}

	swap := models.SwapRequest{
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Status:         models.SwapStatusPending,
		Message:        req.Message,
	}
	if err := s.DB.WithContext(ctx).Create(&swap).Error; err != nil {
		return nil, err
	}

	metrics.SwapEvents.WithLabelValues("created").Inc()
	zap.L().Info("swap request created",
		zap.Uint("swap_id", swap.ID),
		zap.Uint("sender_id", senderID),
		zap.Uint("receiver_id", req.ReceiverID),
	)
	return &swap, nil
}

func (s *SwapService) Get(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return findSwap(s.DB.WithContext(ctx), id)
}

// Respond lets the receiver accept or reject a pending request.
func (s *SwapService) Respond(ctx context.Context, userID, swapID uint, status string) (*models.SwapRequest, error) {
	if status != models.SwapStatusAccepted && status != models.SwapStatusRejected {
		return nil, utils.Validation("invalid status")
	}

	var updated *models.SwapRequest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		swap, err := findSwap(tx, swapID)
		if err != nil {
			return err
		}
		if swap.ReceiverID != userID {
			return utils.Forbidden("not authorized to respond to this request")
		}
		if swap.Status != models.SwapStatusPending {
			return utils.Validation("only pending swap requests can be answered")
		}
		updated, err = transition(tx, swap, models.SwapStatusPending, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.SwapEvents.WithLabelValues(status).Inc()
	return updated, nil
}

// Complete lets either participant close an accepted swap.
func (s *SwapService) Complete(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	var updated *models.SwapRequest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		swap, err := findSwap(tx, swapID)
		if err != nil {
			return err
		}
		if !swap.IsParticipant(userID) {
			return utils.Forbidden("not authorized to complete this swap")
		}
		updated, err = completeSwap(tx, swap)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.SwapEvents.WithLabelValues(models.SwapStatusCompleted).Inc()
	return updated, nil
}

// ListForUser returns the swaps the user sent or received, newest first.
func (s *SwapService) ListForUser(ctx context.Context, userID uint, status string) ([]models.SwapWithUsers, error) {
	q := s.DB.WithContext(ctx).Where("(sender_id = ? OR receiver_id = ?)", userID, userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return listSwaps(q)
}

func (s *SwapService) ListAll(ctx context.Context) ([]models.SwapWithUsers, error) {
	return listSwaps(s.DB.WithContext(ctx))
}

func listSwaps(q *gorm.DB) ([]models.SwapWithUsers, error) {
	var swaps []models.SwapRequest
	err := q.Preload("Sender").Preload("Receiver").
		Order("created_at DESC").Order("id DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.SwapWithUsers, len(swaps))
	for i := range swaps {
		views[i] = swaps[i].WithUsers()
	}
	return views, nil
}

func findSwap(db *gorm.DB, id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	err := db.First(&swap, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("swap request not found")
	}
	if err != nil {
		return nil, err
	}
	return &swap, nil
}

func completeSwap(tx *gorm.DB, swap *models.SwapRequest) (*models.SwapRequest, error) {
	if swap.Status != models.SwapStatusAccepted {
		return nil, utils.Validation("only accepted swaps can be completed")
	}
	return transition(tx, swap, models.SwapStatusAccepted, models.SwapStatusCompleted)
}

// transition moves swap from one status to another. The status guard in the
// WHERE clause makes a concurrent transition lose instead of overwrite.
func transition(tx *gorm.DB, swap *models.SwapRequest, from, to string) (*models.SwapRequest, error) {
	now := time.Now()
	result := tx.Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", swap.ID, from).
		Updates(map[string]interface{}{"status": to, "updated_at": now})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, utils.Validation("swap request status changed, try again")
	}

	swap.Status = to
	swap.UpdatedAt = now
	return swap, nil
}
