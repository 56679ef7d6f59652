package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (*models.User, string, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" {
		return nil, "", utils.Validation("name is required")
	}
	if !utils.ValidEmail(email) {
		return nil, "", utils.Validation("email must be a valid email")
	}
	if len(req.Password) < 6 {
		return nil, "", utils.Validation("password must be at least 6 characters")
	}

	taken, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", utils.Conflict("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("could not hash password: %w", err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	user := models.User{
		Name:          name,
		Email:         email,
		Password:      string(hashedPassword),
		Location:      req.Location,
		Availability:  req.Availability,
		SkillsOffered: datatypes.JSONSlice[string](cleanSkills(req.SkillsOffered)),
		SkillsWanted:  datatypes.JSONSlice[string](cleanSkills(req.SkillsWanted)),
		ProfilePhoto:  req.ProfilePhoto,
		IsPublic:      isPublic,
	}

	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", utils.Conflict("user already exists")
		}
		return nil, "", err
	}

	token, err := utils.IssueToken(s.JWTSecret, user.ID, user.Email, false)
	if err != nil {
		return nil, "", err
	}

	zap.L().Info("user registered", zap.Uint("user_id", user.ID))
	return &user, token, nil
}

func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*models.User, string, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.IssueToken(s.JWTSecret, user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin is Login restricted to accounts carrying the admin flag.
func (s *AuthService) AdminLogin(ctx context.Context, req types.LoginRequest) (*models.User, string, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if !user.IsAdmin {
		return nil, "", utils.AuthForbidden("not authorized as admin")
	}

	token, err := utils.IssueToken(s.JWTSecret, user.ID, user.Email, true)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// authenticate rejects banned accounts before checking the password.
func (s *AuthService) authenticate(ctx context.Context, req types.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if user.IsBanned {
		return nil, utils.AuthForbidden("account has been banned")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.Unauthenticated("invalid credentials")
	}
	return &user, nil
}

func (s *AuthService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if !utils.ValidEmail(email) {
		return false, utils.Validation("email must be a valid email")
	}
	taken, err := s.emailTaken(ctx, email, 0)
	return !taken, err
}

// emailTaken checks whether another user (not exceptID) already uses email.
func (s *AuthService) emailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	q := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SeedAdmin creates the configured administrator when the email is unused.
// An existing account is left untouched.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	taken, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("could not hash password: %w", err)
	}

	admin := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		IsAdmin:  true,
		IsPublic: false,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

// cleanSkills trims entries and drops blanks, keeping order.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
