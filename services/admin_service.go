package services

import (
	"context"
	"errors"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db, Users: NewUserService(db)}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error
	return users, err
}

// SetBanned flips the banned flag on target. Admins cannot ban themselves.
func (s *AdminService) SetBanned(ctx context.Context, adminID, targetID uint, banned bool) error {
	if banned && adminID == targetID {
		return utils.Validation("cannot ban yourself")
	}
	if _, err := s.Users.Get(ctx, targetID); err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", targetID).
		Update("is_banned", banned).Error; err != nil {
		return err
	}

	zap.L().Info("user ban flag changed",
		zap.Uint("admin_id", adminID),
		zap.Uint("user_id", targetID),
		zap.Bool("banned", banned),
	)
	return nil
}

// ListSkills flattens every user's offered then wanted skills.
func (s *AdminService) ListSkills(ctx context.Context) ([]types.SkillEntry, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	skills := []types.SkillEntry{}
	for _, u := range users {
		for _, skill := range u.SkillsOffered {
			skills = append(skills, types.SkillEntry{
				UserID: u.ID, UserName: u.Name, UserEmail: u.Email, Type: utils.SkillTypeOffered, Skill: skill,
			})
		}
		for _, skill := range u.SkillsWanted {
			skills = append(skills, types.SkillEntry{
				UserID: u.ID, UserName: u.Name, UserEmail: u.Email, Type: utils.SkillTypeWanted, Skill: skill,
			})
		}
	}
	return skills, nil
}

// RemoveSkill deletes every exact occurrence of skill from one of the user's lists.
// It returns the number of entries removed.
func (s *AdminService) RemoveSkill(ctx context.Context, userID uint, skill, skillType string) (int, error) {
	if skill == "" || (skillType != utils.SkillTypeOffered && skillType != utils.SkillTypeWanted) {
		return 0, utils.Validation("skill and type (offered/wanted) required")
	}

	removed := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("user not found")
			}
			return err
		}

		column := "skills_offered"
		current := user.SkillsOffered
		if skillType == utils.SkillTypeWanted {
			column = "skills_wanted"
			current = user.SkillsWanted
		}

		kept := make([]string, 0, len(current))
		for _, v := range current {
			if v == skill {
				removed++
				continue
			}
			kept = append(kept, v)
		}
		if removed == 0 {
			return nil
		}
		return tx.Model(&user).Update(column, datatypes.JSONSlice[string](kept)).Error
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
