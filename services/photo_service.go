package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxPhotoSize = 5 << 20

// ObjectStore receives a copy of every uploaded photo.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// R2Store writes objects to a Cloudflare R2 bucket through the S3 API.
type R2Store struct {
	Client *s3.Client
	Bucket string
}

func (r *R2Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	return err
}

type PhotoService struct {
	DB    *gorm.DB
	Store ObjectStore // nil disables mirroring
	now   func() time.Time
}

func NewPhotoService(db *gorm.DB, store ObjectStore) *PhotoService {
	return &PhotoService{DB: db, Store: store, now: time.Now}
}

// Upload stores data as the user's profile photo in data URI form.
func (s *PhotoService) Upload(ctx context.Context, userID uint, data []byte, filename string) (*models.User, error) {
	if len(data) == 0 {
		return nil, utils.Validation("photo file is required")
	}
	if len(data) > MaxPhotoSize {
		return nil, utils.Validation("file too large, maximum size is 5MB")
	}

	mtype := mimetype.Detect(data)
	contentType := strings.TrimSpace(strings.SplitN(mtype.String(), ";", 2)[0])
	if !strings.HasPrefix(contentType, "image/") {
		return nil, utils.Validation("only image files are allowed")
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("user not found")
		}
		return nil, err
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	updates := map[string]interface{}{"profile_photo": dataURI}

	if s.Store != nil {
		key := s.avatarKey(userID, mtype.Extension(), filename)
		if err := s.Store.Put(ctx, key, contentType, data); err != nil {
			zap.L().Warn("profile photo mirror failed",
				zap.Uint("user_id", userID),
				zap.String("key", key),
				zap.Error(err),
			)
		} else {
			updates["profile_photo_key"] = key
		}
	}

	if err := s.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PhotoService) avatarKey(userID uint, ext, filename string) string {
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	return fmt.Sprintf("users/%d/avatar/%d_%s%s", userID, s.now().Unix(), uuid.NewString(), ext)
}
