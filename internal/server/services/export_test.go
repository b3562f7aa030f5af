package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/studyguide/internal/common"
	sc "github.com/dmitrijs2005/studyguide/internal/server/config"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportSeams struct {
	putKey      string
	putTTL      time.Duration
	getKey      string
	uploaded    []byte
	uploadURL   string
	contentType string
	endpoint    string
	pathStyle   bool
}

func stubExportSeams(t *testing.T) *exportSeams {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	origUpload := uploadToPresignedURL
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
		uploadToPresignedURL = origUpload
	})

	st := &exportSeams{}

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			st.endpoint = *opts.BaseEndpoint
		}
		st.pathStyle = opts.UsePathStyle
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		st.putKey = *in.Key
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		st.putTTL = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://s3/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		st.getKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://s3/get/" + *in.Key}, nil
	}
	uploadToPresignedURL = func(ctx context.Context, url string, file []byte, contentType string) error {
		st.uploadURL = url
		st.uploaded = file
		st.contentType = contentType
		return nil
	}
	return st
}

func newExportService(t *testing.T, rm *fakeRepoManager) (*ExportService, *models.HistoryRecord) {
	t.Helper()
	h := NewHistoryService(&sql.DB{}, rm)
	rec, err := h.Record(context.Background(), &models.HistoryRecord{
		User: "ana@ugto.mx", Kind: models.KindSummary, Prompt: "1. Límites", Response: "Un límite es...",
	})
	require.NoError(t, err)

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewExportService(h, cfg), rec
}

func TestExport_Success(t *testing.T) {
	st := stubExportSeams(t)
	s, rec := newExportService(t, newFakeRepoManager())

	url, expires, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^history/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}\.pdf$`), st.putKey)
	assert.Equal(t, st.putKey, st.getKey, "GET must point at the uploaded object")
	assert.Equal(t, "http://s3/get/"+st.putKey, url)
	assert.Equal(t, "http://s3/put/"+st.putKey, st.uploadURL)
	assert.Equal(t, "application/pdf", st.contentType)
	assert.True(t, bytes.HasPrefix(st.uploaded, []byte("%PDF-")))
	assert.Equal(t, 15*time.Minute, st.putTTL)
	assert.Equal(t, "http://127.0.0.1:9000/", st.endpoint)
	assert.True(t, st.pathStyle)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expires, time.Minute)
}

func TestExport_OtherUsersRecord(t *testing.T) {
	st := stubExportSeams(t)
	s, rec := newExportService(t, newFakeRepoManager())

	_, _, err := s.Export(context.Background(), "bob@ugto.mx", rec.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, st.uploaded)
}

func TestExport_NotConfigured(t *testing.T) {
	tests := []struct {
		name  string
		clear func(c *sc.Config)
	}{
		{"no bucket", func(c *sc.Config) { c.S3Bucket = "" }},
		{"no endpoint", func(c *sc.Config) { c.S3BaseEndpoint = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := stubExportSeams(t)
			s, rec := newExportService(t, newFakeRepoManager())
			tt.clear(s.config)

			_, _, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
			assert.ErrorIs(t, err, common.ErrNotConfigured)
			assert.Empty(t, st.putKey)
			assert.Empty(t, st.uploaded)
		})
	}
}

func TestExport_Failures(t *testing.T) {
	t.Run("aws config", func(t *testing.T) {
		stubExportSeams(t)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("no creds")
		}
		s, rec := newExportService(t, newFakeRepoManager())
		_, _, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
		assert.ErrorContains(t, err, "s3 config: no creds")
	})

	t.Run("presign put", func(t *testing.T) {
		stubExportSeams(t)
		presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("denied")
		}
		s, rec := newExportService(t, newFakeRepoManager())
		_, _, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
		assert.ErrorContains(t, err, "presign put: denied")
	})

	t.Run("upload", func(t *testing.T) {
		stubExportSeams(t)
		uploadToPresignedURL = func(ctx context.Context, url string, file []byte, contentType string) error {
			return errors.New("upload failed: 403 Forbidden")
		}
		s, rec := newExportService(t, newFakeRepoManager())
		_, _, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
		assert.ErrorContains(t, err, "403")
	})

	t.Run("presign get", func(t *testing.T) {
		stubExportSeams(t)
		presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("denied")
		}
		s, rec := newExportService(t, newFakeRepoManager())
		_, _, err := s.Export(context.Background(), "ana@ugto.mx", rec.ID)
		assert.ErrorContains(t, err, "presign get: denied")
	})
}

func TestGetRandomStorageKey(t *testing.T) {
	d := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	k1 := GetRandomStorageKey(d)
	k2 := GetRandomStorageKey(d)
	assert.Regexp(t, `^history/2026/03/07/[0-9a-f-]{36}\.pdf$`, k1)
	assert.NotEqual(t, k1, k2)
}
