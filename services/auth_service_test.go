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

func TestRegister_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	user, token, err := svc.Register(context.Background(), types.RegisterRequest{
		Name:          "Alice",
		Email:         "  Alice@Example.COM ",
		Password:      "secret123",
		SkillsOffered: []string{" Guitar ", "", "Piano"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsPublic)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, []string{"Guitar", "Piano"}, []string(user.SkillsOffered))
	assert.NotEqual(t, "secret123", user.Password)

	claims, err := utils.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegister_PrivateProfile(t *testing.T) {
	db := newTestDB(t)
	private := false

	user, _, err := NewAuthService(db, testSecret).Register(context.Background(), types.RegisterRequest{
		Name: "Bob", Email: "bob@example.com", Password: "secret123", IsPublic: &private,
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.False(t, stored.IsPublic)
}

func TestRegister_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	cases := map[string]types.RegisterRequest{
		"missing name":   {Email: "a@example.com", Password: "secret123"},
		"bad email":      {Name: "A", Email: "not-an-email", Password: "secret123"},
		"short password": {Name: "A", Email: "a@example.com", Password: "12345"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, req)
			require.Error(t, err)
			assert.True(t, utils.IsKind(err, utils.KindValidation))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	req := types.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret123"}
	_, _, err := svc.Register(ctx, req)
	require.NoError(t, err)

	req.Email = "DUP@example.com"
	_, _, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, types.LoginRequest{Email: "A@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@example.com", user.Email)

	_, _, err = svc.Login(ctx, types.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assertStatus(t, err, 401)

	_, _, err = svc.Login(ctx, types.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assertStatus(t, err, 401)
}

func TestLogin_BannedUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("is_banned", true).Error)

	// Banned wins over the password check.
	for _, pw := range []string{"secret123", "wrong"} {
		_, _, err = svc.Login(ctx, types.LoginRequest{Email: "a@example.com", Password: pw})
		assertStatus(t, err, 403)
		assert.True(t, utils.IsKind(err, utils.KindAuth))
	}
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, types.RegisterRequest{Name: "A", Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, _, err = svc.AdminLogin(ctx, types.LoginRequest{Email: "user@example.com", Password: "secret123"})
	assertStatus(t, err, 403)

	created, err := svc.SeedAdmin(ctx, "Admin", "admin@example.com", "adminpass")
	require.NoError(t, err)
	require.True(t, created)

	admin, token, err := svc.AdminLogin(ctx, types.LoginRequest{Email: "admin@example.com", Password: "adminpass"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	claims, err := utils.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestSeedAdmin_LeavesExistingAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	created, err := svc.SeedAdmin(ctx, "Admin", "admin@example.com", "first-pass")
	require.NoError(t, err)
	require.True(t, created)

	created, err = svc.SeedAdmin(ctx, "Admin", "admin@example.com", "second-pass")
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = svc.AdminLogin(ctx, types.LoginRequest{Email: "admin@example.com", Password: "first-pass"})
	assert.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEmailAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	available, err := svc.EmailAvailable(ctx, "free@example.com")
	require.NoError(t, err)
	assert.True(t, available)

	_, _, err = svc.Register(ctx, types.RegisterRequest{Name: "A", Email: "free@example.com", Password: "secret123"})
	require.NoError(t, err)

	available, err = svc.EmailAvailable(ctx, "Free@Example.com")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = svc.EmailAvailable(ctx, "nope")
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
}
