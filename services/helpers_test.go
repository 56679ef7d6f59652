package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/skill-swap/api-go/config"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

// mustRegister creates a public user with the given skills.
func mustRegister(t *testing.T, db *gorm.DB, name string, offered, wanted []string) *models.User {
	t.Helper()

	user, _, err := NewAuthService(db, testSecret).Register(context.Background(), types.RegisterRequest{
		Name:          name,
		Email:         fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Password:      "secret123",
		SkillsOffered: offered,
		SkillsWanted:  wanted,
	})
	require.NoError(t, err)
	return user
}

// acceptedSwap returns a swap from sender to receiver that the receiver has accepted.
func acceptedSwap(t *testing.T, db *gorm.DB, sender, receiver *models.User) *models.SwapRequest {
	t.Helper()

	ctx := context.Background()
	svc := NewSwapService(db)
	swap, err := svc.Create(ctx, sender.ID, types.SendSwapRequest{
		ReceiverID:     receiver.ID,
		OfferedSkill:   "Guitar",
		RequestedSkill: "Spanish",
	})
	require.NoError(t, err)

	swap, err = svc.Respond(ctx, receiver.ID, swap.ID, models.SwapStatusAccepted)
	require.NoError(t, err)
	return swap
}
