package services

import (
	"context"

	"github.com/skill-swap/api-go/metrics"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

// Submit records a rating for the other participant of a swap and refreshes
// the reviewee's average rating in the same transaction. With req.Complete
// the swap is also moved from accepted to completed.
func (s *FeedbackService) Submit(ctx context.Context, reviewerID uint, req types.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.SwapID == 0 || req.RevieweeID == 0 {
		return nil, utils.Validation("swapId and revieweeId are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.Validation("rating must be between 1 and 5")
	}

	var feedback models.Feedback
	completed := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		swap, err := findSwap(tx, req.SwapID)
		if err != nil {
			return err
		}
		if !swap.IsParticipant(reviewerID) {
			return utils.Forbidden("not authorized to leave feedback for this swap")
		}
		if req.RevieweeID == reviewerID || !swap.IsParticipant(req.RevieweeID) {
			return utils.Validation("reviewee must be the other participant of the swap")
		}

		feedback = models.Feedback{
			SwapID:     swap.ID,
			ReviewerID: reviewerID,
			RevieweeID: req.RevieweeID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}
		if err := recomputeRating(tx, req.RevieweeID); err != nil {
			return err
		}

		if req.Complete {
			if _, err := completeSwap(tx, swap); err != nil {
				return err
			}
			completed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FeedbackSubmitted.Inc()
	if completed {
		metrics.SwapEvents.WithLabelValues(models.SwapStatusCompleted).Inc()
	}
	zap.L().Info("feedback submitted",
		zap.Uint("swap_id", req.SwapID),
		zap.Uint("reviewer_id", reviewerID),
		zap.Uint("reviewee_id", req.RevieweeID),
		zap.Int("rating", req.Rating),
	)
	return &feedback, nil
}

// recomputeRating stores the mean of every rating the user has received.
// A user without feedback keeps the current value.
func recomputeRating(tx *gorm.DB, userID uint) error {
	var agg struct {
		Total   int64
		Average float64
	}
	err := tx.Model(&models.Feedback{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS average").
		Where("reviewee_id = ?", userID).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	if agg.Total == 0 {
		return nil
	}
	return tx.Model(&models.User{}).Where("id = ?", userID).Update("rating", agg.Average).Error
}

// ForUser lists feedback the user received, newest first.
func (s *FeedbackService) ForUser(ctx context.Context, userID uint) ([]models.FeedbackWithDetails, error) {
	var rows []models.Feedback
	err := s.DB.WithContext(ctx).
		Preload("Reviewer").Preload("Swap").
		Where("reviewee_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.FeedbackWithDetails, len(rows))
	for i := range rows {
		views[i] = rows[i].WithDetails()
	}
	return views, nil
}
