package services

import (
	"context"
	"errors"
	"strings"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPublicProfile returns a user visible in search, or the viewer's own record.
func (s *UserService) GetPublicProfile(ctx context.Context, viewerID, id uint) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != viewerID && (!user.IsPublic || user.IsBanned) {
		return nil, utils.NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, req types.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var columns []string
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.Validation("name is required")
		}
		user.Name = name
		columns = append(columns, "name")
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if !utils.ValidEmail(email) {
			return nil, utils.Validation("email must be a valid email")
		}
		if email != user.Email {
			var count int64
			if err := s.DB.WithContext(ctx).Model(&models.User{}).
				Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, utils.Conflict("email already in use")
			}
			user.Email = email
			columns = append(columns, "email")
		}
	}
	if req.Location != nil {
		user.Location = req.Location
		columns = append(columns, "location")
	}
	if req.Availability != nil {
		user.Availability = req.Availability
		columns = append(columns, "availability")
	}
	if req.SkillsOffered != nil {
		user.SkillsOffered = datatypes.JSONSlice[string](cleanSkills(*req.SkillsOffered))
		columns = append(columns, "skills_offered")
	}
	if req.SkillsWanted != nil {
		user.SkillsWanted = datatypes.JSONSlice[string](cleanSkills(*req.SkillsWanted))
		columns = append(columns, "skills_wanted")
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = req.ProfilePhoto
		columns = append(columns, "profile_photo")
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
		columns = append(columns, "is_public")
	}

	if len(columns) == 0 {
		return user, nil
	}

	err = s.DB.WithContext(ctx).Model(user).Select(columns).Updates(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, utils.Conflict("email already in use")
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// SearchParams filters Search. Empty strings impose no constraint.
type SearchParams struct {
	Skill        string
	Location     string
	Availability string
	Limit        int
	Offset       int
}

// Search returns public, unbanned users matching every supplied filter, best rated first.
// Filters are literal case-insensitive substrings of a single skill name, the location
// or the availability, matched on decoded rows.
func (s *UserService) Search(ctx context.Context, params SearchParams) ([]models.User, error) {
	var candidates []models.User
	err := s.DB.WithContext(ctx).
		Where("is_public = ? AND is_banned = ?", true, false).
		Order("rating DESC").Order("id ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	skill := strings.ToLower(strings.TrimSpace(params.Skill))
	location := strings.ToLower(strings.TrimSpace(params.Location))
	availability := strings.ToLower(strings.TrimSpace(params.Availability))

	matched := make([]models.User, 0, len(candidates))
	for _, u := range candidates {
		if skill != "" && !anyContains(u.SkillsOffered, skill) && !anyContains(u.SkillsWanted, skill) {
			continue
		}
		if location != "" && !contains(u.Location, location) {
			continue
		}
		if availability != "" && !contains(u.Availability, availability) {
			continue
		}
		matched = append(matched, u)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []models.User{}, nil
	}
	return matched[offset:min(offset+limit, len(matched))], nil
}

// needle must already be lower case.
func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func contains(value *string, needle string) bool {
	return value != nil && strings.Contains(strings.ToLower(*value), needle)
}

// TopRated ranks public, unbanned users with at least one rating.
func (s *UserService) TopRated(ctx context.Context, limit int) ([]types.TopUser, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("is_public = ? AND is_banned = ? AND rating > ?", true, false, 0).
		Order("rating DESC").Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []types.TopUser{}, nil
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	var counts []struct {
		RevieweeID uint
		Total      int64
	}
	err = s.DB.WithContext(ctx).Model(&models.Feedback{}).
		Select("reviewee_id, COUNT(*) AS total").
		Where("reviewee_id IN ?", ids).
		Group("reviewee_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byUser[c.RevieweeID] = c.Total
	}

	top := make([]types.TopUser, len(users))
	for i, u := range users {
		top[i] = types.TopUser{
			ID:            u.ID,
			Name:          u.Name,
			Location:      u.Location,
			ProfilePhoto:  u.ProfilePhoto,
			Rating:        u.Rating,
			FeedbackCount: byUser[u.ID],
			Rank:          i + 1,
		}
	}
	return top, nil
}
