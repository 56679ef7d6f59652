package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
	"gorm.io/gorm"
)

const (
	ReportUsers    = "users"
	ReportSwaps    = "swaps"
	ReportFeedback = "feedback"
)

type ReportService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db, now: time.Now}
}

func (s *ReportService) Users(ctx context.Context) (*types.UserReport, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	report := &types.UserReport{TotalUsers: int64(len(users)), GeneratedAt: now}

	var ratingSum float64
	var rated int64
	for _, u := range users {
		if u.IsBanned {
			report.BannedUsers++
		} else {
			report.ActiveUsers++
		}
		if u.IsPublic {
			report.PublicUsers++
		}
		if u.IsAdmin {
			report.AdminUsers++
		}
		if u.CreatedAt.After(weekAgo) {
			report.NewUsers7Days++
		}
		if u.Rating > 0 {
			ratingSum += u.Rating
			rated++
		}
	}
	if rated > 0 {
		report.AverageRating = ratingSum / float64(rated)
	}
	return report, nil
}

func (s *ReportService) Swaps(ctx context.Context) (*types.SwapReport, error) {
	var swaps []models.SwapRequest
	if err := s.DB.WithContext(ctx).Find(&swaps).Error; err != nil {
		return nil, err
	}

	report := &types.SwapReport{
		TotalSwaps: int64(len(swaps)),
		ByStatus: map[string]int64{
			models.SwapStatusPending:   0,
			models.SwapStatusAccepted:  0,
			models.SwapStatusRejected:  0,
			models.SwapStatusCompleted: 0,
		},
		GeneratedAt: s.now(),
	}
	for _, sw := range swaps {
		report.ByStatus[sw.Status]++
	}
	if report.TotalSwaps > 0 {
		report.CompletionRate = float64(report.ByStatus[models.SwapStatusCompleted]) / float64(report.TotalSwaps)
	}
	return report, nil
}

func (s *ReportService) Feedback(ctx context.Context) (*types.FeedbackReport, error) {
	var rows []models.Feedback
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	report := &types.FeedbackReport{
		TotalFeedback: int64(len(rows)),
		Distribution:  map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		GeneratedAt:   s.now(),
	}
	sum := 0
	for _, f := range rows {
		report.Distribution[f.Rating]++
		sum += f.Rating
	}
	if len(rows) > 0 {
		report.AverageRating = float64(sum) / float64(len(rows))
	}
	return report, nil
}

// WriteCSV writes one header row and one row per entity of the given report type.
func (s *ReportService) WriteCSV(ctx context.Context, reportType string, w io.Writer) error {
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch reportType {
	case ReportUsers:
		header = []string{"id", "name", "email", "location", "availability", "skills_offered", "skills_wanted",
			"rating", "is_public", "is_admin", "is_banned", "created_at"}
		rows, err = s.userRows(ctx)
	case ReportSwaps:
		header = []string{"id", "sender_id", "sender_name", "receiver_id", "receiver_name",
			"offered_skill", "requested_skill", "status", "created_at", "updated_at"}
		rows, err = s.swapRows(ctx)
	case ReportFeedback:
		header = []string{"id", "swap_id", "reviewer_id", "reviewer_name", "reviewee_id", "reviewee_name",
			"rating", "comment", "created_at"}
		rows, err = s.feedbackRows(ctx)
	default:
		return utils.Validation("invalid report type")
	}
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func (s *ReportService) userRows(ctx context.Context) ([][]string, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			uintCell(u.ID),
			u.Name,
			u.Email,
			optional(u.Location),
			optional(u.Availability),
			strings.Join(u.SkillsOffered, "; "),
			strings.Join(u.SkillsWanted, "; "),
			strconv.FormatFloat(u.Rating, 'f', 2, 64),
			strconv.FormatBool(u.IsPublic),
			strconv.FormatBool(u.IsAdmin),
			strconv.FormatBool(u.IsBanned),
			timeCell(u.CreatedAt),
		})
	}
	return rows, nil
}

func (s *ReportService) swapRows(ctx context.Context) ([][]string, error) {
	var swaps []models.SwapRequest
	err := s.DB.WithContext(ctx).Preload("Sender").Preload("Receiver").Order("id ASC").Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(swaps))
	for i := range swaps {
		v := swaps[i].WithUsers()
		rows = append(rows, []string{
			uintCell(v.ID),
			uintCell(v.Sender.ID),
			v.Sender.Name,
			uintCell(v.Receiver.ID),
			v.Receiver.Name,
			v.OfferedSkill,
			v.RequestedSkill,
			v.Status,
			timeCell(v.CreatedAt),
			timeCell(v.UpdatedAt),
		})
	}
	return rows, nil
}

func (s *ReportService) feedbackRows(ctx context.Context) ([][]string, error) {
	var feedback []models.Feedback
	err := s.DB.WithContext(ctx).Preload("Reviewer").Preload("Reviewee").Order("id ASC").Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(feedback))
	for _, f := range feedback {
		var reviewer, reviewee string
		if f.Reviewer != nil {
			reviewer = f.Reviewer.Name
		}
		if f.Reviewee != nil {
			reviewee = f.Reviewee.Name
		}
		rows = append(rows, []string{
			uintCell(f.ID),
			uintCell(f.SwapID),
			uintCell(f.ReviewerID),
			reviewer,
			uintCell(f.RevieweeID),
			reviewee,
			strconv.Itoa(f.Rating),
			optional(f.Comment),
			timeCell(f.CreatedAt),
		})
	}
	return rows, nil
}

func uintCell(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func timeCell(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ValidReportType reports whether t names a downloadable report.
func ValidReportType(t string) bool {
	return t == ReportUsers || t == ReportSwaps || t == ReportFeedback
}
