package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	AccountID       string `yaml:"account_id"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	BucketName      string `yaml:"bucket_name"`
	PublicURL       string `yaml:"public_url"`
	Region          string `yaml:"region"`
}

func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.SecretAccessKey != "" && r.BucketName != ""
}

// NewR2Client returns an S3 client for the Cloudflare R2 account, or nil when R2 is not configured.
func NewR2Client(r R2Config) *s3.Client {
	if !r.Enabled() {
		return nil
	}
	return s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r.AccessKeyID,
			r.SecretAccessKey,
			"",
		),
		Region: r.Region,
	})
}
