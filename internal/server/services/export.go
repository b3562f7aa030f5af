package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/export"
	"github.com/dmitrijs2005/studyguide/internal/netx"
	sc "github.com/dmitrijs2005/studyguide/internal/server/config"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/google/uuid"
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

	uploadToPresignedURL = netx.UploadToS3PresignedURL
)

var kindTitles = map[models.Kind]string{
	models.KindSummary:  "Resumen",
	models.KindGuide:    "Guía de estudio",
	models.KindQuestion: "Respuesta",
	models.KindTopic:    "Explicación del tema",
}

// ExportService archives history records as PDFs in object storage and hands
// out short-lived download links.
type ExportService struct {
	history *HistoryService
	config  *sc.Config
}

func NewExportService(h *HistoryService, config *sc.Config) *ExportService {
	return &ExportService{history: h, config: config}
}

// GetRandomStorageKey returns history/<yyyy>/<mm>/<dd>/<uuid>.pdf for d.
func GetRandomStorageKey(d time.Time) string {
	return fmt.Sprintf("history/%04d/%02d/%02d/%v.pdf", d.Year(), d.Month(), d.Day(), uuid.New())
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

// Export renders record id of user as a PDF, stores it and returns a
// presigned GET URL together with its expiry.
func (s *ExportService) Export(ctx context.Context, user, id string) (string, time.Time, error) {
	if s.config.S3Bucket == "" || s.config.S3BaseEndpoint == "" {
		return "", time.Time{}, common.ErrNotConfigured
	}

	rec, err := s.history.Get(ctx, user, id)
	if err != nil {
		return "", time.Time{}, err
	}

	pdf, err := export.RenderPDF(export.Document{
		Title:     kindTitles[rec.Kind],
		Subtitle:  rec.Prompt,
		Body:      rec.Response,
		CreatedAt: rec.CreatedAt,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("s3 config: %w", err)
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(time.Now().UTC())
	contentType := "application/pdf"
	ttl := s.config.PresignValidityDuration

	put, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign put: %w", err)
	}

	if err := uploadToPresignedURL(ctx, put.URL, pdf, contentType); err != nil {
		return "", time.Time{}, err
	}

	expires := time.Now().Add(ttl)
	get, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign get: %w", err)
	}

	return get.URL, expires, nil
}
