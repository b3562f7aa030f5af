package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studyguide/internal/client/client"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/export"
	"github.com/dmitrijs2005/studyguide/internal/filex"
	"github.com/dmitrijs2005/studyguide/internal/netx"
)

// seams for tests
var (
	downloadFromPresignedURL = netx.DownloadFromPresignedURL
	saveInWorkDir            = filex.SaveInWorkDir
)

// StudyService is what the content screens use: curriculum reads,
// generation, history and PDF files in the working directory.
type StudyService interface {
	Semesters(ctx context.Context) ([]models.Semester, error)
	Subject(ctx context.Context, id int64) (*models.Subject, error)
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)
	History(ctx context.Context, limit int) ([]models.HistoryRecord, error)
	// DownloadExport has the server archive rec as PDF and saves the file
	// in the working directory, returning its path.
	DownloadExport(ctx context.Context, rec models.HistoryRecord) (string, error)
	// SavePDF renders freshly generated text locally and saves it in the
	// working directory, returning its path.
	SavePDF(kind models.Kind, prompt, body string, at time.Time) (string, error)
}

type studyService struct {
	client client.Client
}

func NewStudyService(c client.Client) StudyService {
	return &studyService{client: c}
}

func (s *studyService) Semesters(ctx context.Context) ([]models.Semester, error) {
	return s.client.ListSubjects(ctx)
}

func (s *studyService) Subject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.client.GetSubject(ctx, id)
}

func (s *studyService) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	return s.client.Generate(ctx, req)
}

func (s *studyService) History(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	return s.client.ListHistory(ctx, limit)
}

func (s *studyService) DownloadExport(ctx context.Context, rec models.HistoryRecord) (string, error) {
	url, err := s.client.ExportHistory(ctx, rec.ID)
	if err != nil {
		return "", err
	}

	data, err := downloadFromPresignedURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download error: %w", err)
	}

	return saveInWorkDir(filex.ExportFileName(string(rec.Kind), rec.CreatedAt, "pdf"), data)
}

func (s *studyService) SavePDF(kind models.Kind, prompt, body string, at time.Time) (string, error) {
	data, err := export.RenderPDF(export.Document{
		Title:     kind.Title(),
		Subtitle:  prompt,
		Body:      body,
		CreatedAt: at,
	})
	if err != nil {
		return "", err
	}
	return saveInWorkDir(filex.ExportFileName(string(kind), at, "pdf"), data)
}
