package services

import (
	"context"
	"testing"

	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastAndActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)
	ctx := context.Background()
	admin := mustRegister(t, db, "Admin", nil, nil)

	_, err := svc.Broadcast(ctx, admin.ID, types.BroadcastRequest{Title: "t", Message: "m", Type: "party"})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
	_, err = svc.Broadcast(ctx, admin.ID, types.BroadcastRequest{Title: " ", Message: "m", Type: "info"})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	first, err := svc.Broadcast(ctx, admin.ID, types.BroadcastRequest{Title: "Welcome", Message: "Hello", Type: "info"})
	require.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Equal(t, admin.ID, first.CreatedBy)

	second, err := svc.Broadcast(ctx, admin.ID, types.BroadcastRequest{Title: "Downtime", Message: "Soon", Type: "maintenance"})
	require.NoError(t, err)

	msgs, unread, err := svc.Active(ctx, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, second.ID, msgs[0].ID)
	assert.Equal(t, 2, unread)

	_, unread, err = svc.Active(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, db.Model(first).Update("is_active", false).Error)
	msgs, unread, err = svc.Active(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, 1, unread)
}
