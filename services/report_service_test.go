package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReportData(t *testing.T, svc *ReportService) (alice, bob *models.User) {
	t.Helper()

	db := svc.DB
	ctx := context.Background()
	alice = mustRegister(t, db, "Alice", []string{"Guitar"}, nil)
	bob = mustRegister(t, db, "Bob", []string{"Spanish"}, []string{"Guitar"})
	carol := mustRegister(t, db, "Carol", nil, nil)
	require.NoError(t, db.Model(carol).Updates(map[string]interface{}{"is_banned": true, "is_public": false}).Error)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", carol.ID).
		Update("created_at", time.Now().Add(-30*24*time.Hour)).Error)

	swap := acceptedSwap(t, db, alice, bob)
	_, err := NewFeedbackService(db).Submit(ctx, alice.ID, types.SubmitFeedbackRequest{
		SwapID: swap.ID, RevieweeID: bob.ID, Rating: 4, Comment: strPtr("nice, thanks"), Complete: true,
	})
	require.NoError(t, err)
	_, err = NewFeedbackService(db).Submit(ctx, bob.ID, types.SubmitFeedbackRequest{
		SwapID: swap.ID, RevieweeID: alice.ID, Rating: 2,
	})
	require.NoError(t, err)

	_, err = NewSwapService(db).Create(ctx, bob.ID, types.SendSwapRequest{
		ReceiverID: carol.ID, OfferedSkill: "Spanish", RequestedSkill: "Chess",
	})
	require.NoError(t, err)
	return alice, bob
}

func TestReports(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	seedReportData(t, svc)
	ctx := context.Background()

	users, err := svc.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), users.TotalUsers)
	assert.Equal(t, int64(2), users.ActiveUsers)
	assert.Equal(t, int64(1), users.BannedUsers)
	assert.Equal(t, int64(2), users.PublicUsers)
	assert.Equal(t, int64(0), users.AdminUsers)
	assert.Equal(t, int64(2), users.NewUsers7Days)
	assert.InDelta(t, 3.0, users.AverageRating, 1e-9)

	swaps, err := svc.Swaps(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), swaps.TotalSwaps)
	assert.Equal(t, int64(1), swaps.ByStatus[models.SwapStatusCompleted])
	assert.Equal(t, int64(1), swaps.ByStatus[models.SwapStatusPending])
	assert.Equal(t, int64(0), swaps.ByStatus[models.SwapStatusRejected])
	assert.InDelta(t, 0.5, swaps.CompletionRate, 1e-9)

	feedback, err := svc.Feedback(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), feedback.TotalFeedback)
	assert.InDelta(t, 3.0, feedback.AverageRating, 1e-9)
	assert.Equal(t, map[int]int64{1: 0, 2: 1, 3: 0, 4: 1, 5: 0}, feedback.Distribution)
}

func TestReports_Empty(t *testing.T) {
	svc := NewReportService(newTestDB(t))
	ctx := context.Background()

	swaps, err := svc.Swaps(ctx)
	require.NoError(t, err)
	assert.Zero(t, swaps.CompletionRate)

	feedback, err := svc.Feedback(ctx)
	require.NoError(t, err)
	assert.Zero(t, feedback.AverageRating)
	assert.Len(t, feedback.Distribution, 5)
}

func TestWriteCSV(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	alice, bob := seedReportData(t, svc)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(ctx, ReportFeedback, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rating", records[0][6])
	assert.Equal(t, "Alice", records[1][3])
	assert.Equal(t, "Bob", records[1][5])
	assert.Equal(t, "nice, thanks", records[1][7])

	buf.Reset()
	require.NoError(t, svc.WriteCSV(ctx, ReportUsers, &buf))
	records, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, alice.Email, records[1][2])
	assert.Equal(t, "Spanish", records[2][5])
	assert.Equal(t, "Guitar", records[2][6])

	buf.Reset()
	require.NoError(t, svc.WriteCSV(ctx, ReportSwaps, &buf))
	records, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, bob.Name, records[1][4])
	assert.Equal(t, models.SwapStatusCompleted, records[1][7])

	err = svc.WriteCSV(ctx, "payments", &buf)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}
