package services

import (
	"context"
	"testing"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedback_RecomputesMean(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	users := NewUserService(db)
	ctx := context.Background()
	alice := mustRegister(t, db, "Alice", nil, nil)
	bob := mustRegister(t, db, "Bob", nil, nil)
	carol := mustRegister(t, db, "Carol", nil, nil)

	first := acceptedSwap(t, db, alice, bob)
	second := acceptedSwap(t, db, carol, bob)

	_, err := svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: first.ID, RevieweeID: bob.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, carol.ID, types.SubmitFeedbackRequest{SwapID: second.ID, RevieweeID: bob.ID, Rating: 2})
	require.NoError(t, err)

	got, err := users.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.Rating, 1e-9)

	// The reviewer's own rating is untouched.
	reviewer, err := users.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, reviewer.Rating)
}

func TestSubmitFeedback_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	ctx := context.Background()
	alice := mustRegister(t, db, "Alice", nil, nil)
	bob := mustRegister(t, db, "Bob", nil, nil)
	carol := mustRegister(t, db, "Carol", nil, nil)
	swap := acceptedSwap(t, db, alice, bob)

	_, err := svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: bob.ID, Rating: 6})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: 9999, RevieweeID: bob.ID, Rating: 4})
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = svc.Submit(ctx, carol.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: bob.ID, Rating: 4})
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))

	_, err = svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: alice.ID, Rating: 4})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: carol.ID, Rating: 4})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitFeedback_CompletesSwap(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	swaps := NewSwapService(db)
	ctx := context.Background()
	alice := mustRegister(t, db, "Alice", nil, nil)
	bob := mustRegister(t, db, "Bob", nil, nil)
	swap := acceptedSwap(t, db, alice, bob)

	_, err := svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{
		SwapID: swap.ID, RevieweeID: bob.ID, Rating: 4, Comment: strPtr("great"), Complete: true,
	})
	require.NoError(t, err)

	stored, err := swaps.Get(ctx, swap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusCompleted, stored.Status)

	// The swap is no longer accepted, so a second completing review rolls back entirely.
	_, err = svc.Submit(ctx, bob.ID, types.SubmitFeedbackRequest{
		SwapID: swap.ID, RevieweeID: alice.ID, Rating: 1, Complete: true,
	})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Where("reviewee_id = ?", alice.ID).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, alice.ID).Error)
	assert.Zero(t, reloaded.Rating)
}

func TestFeedbackForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	ctx := context.Background()
	alice := mustRegister(t, db, "Alice", nil, nil)
	bob := mustRegister(t, db, "Bob", nil, nil)
	swap := acceptedSwap(t, db, alice, bob)

	_, err := svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: bob.ID, Rating: 3})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, alice.ID, types.SubmitFeedbackRequest{SwapID: swap.ID, RevieweeID: bob.ID, Rating: 5, Comment: strPtr("again")})
	require.NoError(t, err)

	rows, err := svc.ForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, "Alice", rows[0].Reviewer.Name)
	assert.Equal(t, "Guitar", rows[0].SwapRequest.OfferedSkill)
	assert.Equal(t, "Spanish", rows[0].SwapRequest.RequestedSkill)

	none, err := svc.ForUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
