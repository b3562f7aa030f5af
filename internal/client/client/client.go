package client

import (
	"context"

	"github.com/dmitrijs2005/studyguide/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, login, password string) (*models.Session, error)
	Logout()
	Ping(ctx context.Context) error
	ListSubjects(ctx context.Context) ([]models.Semester, error)
	GetSubject(ctx context.Context, id int64) (*models.Subject, error)
	// Generate returns the generated text. When generation fails with a
	// message meant for the user, the message is returned together with the
	// error.
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)
	ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error)
	ExportHistory(ctx context.Context, id string) (string, error)
}
