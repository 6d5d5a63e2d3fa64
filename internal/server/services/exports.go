package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/common"
	sc "github.com/dmitrijs2005/gophsafe/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PresignedExport is an object slot for one exported document.
type PresignedExport struct {
	Key    string
	PutURL string
	GetURL string
}

// ExportService hands out presigned S3 URLs for exported documents. The
// server never sees the document bytes.
type ExportService struct {
	config *sc.Config
	now    func() time.Time
}

func NewExportService(cfg *sc.Config) *ExportService {
	return &ExportService{config: cfg, now: time.Now}
}

// StorageKey places fileName under the user's prefix, partitioned by day.
func StorageKey(userID, fileName string, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s-%s", userID, t.Year(), t.Month(), t.Day(), uuid.New(), fileName)
}

// SanitizeFileName keeps the base name and replaces anything outside
// [A-Za-z0-9._-] with '-'. It returns "" for names that reduce to nothing.
func SanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '-'
	}, base)
	if strings.Trim(clean, ".-_") == "" {
		return ""
	}
	return clean
}

// ContentTypeFor returns the upload content type for an export file name.
func ContentTypeFor(fileName string) string {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".md":
		return "text/markdown; charset=utf-8"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

func (s *ExportService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignExport returns a PUT URL for uploading fileName and a GET URL for
// sharing it. Both expire after ExportURLValidityDuration.
func (s *ExportService) PresignExport(ctx context.Context, userID, fileName string) (*PresignedExport, error) {
	name := SanitizeFileName(fileName)
	if name == "" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrValidation)
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID, name, s.now())
	expires := s3.WithPresignExpires(s.config.ExportURLValidityDuration)

	put, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(ContentTypeFor(name)),
	}, expires)
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	get, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, expires)
	if err != nil {
		return nil, fmt.Errorf("presign get: %w", err)
	}

	return &PresignedExport{Key: key, PutURL: put.URL, GetURL: get.URL}, nil
}
