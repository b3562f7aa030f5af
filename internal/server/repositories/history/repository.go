package history

import (
	"context"

	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

// Repository is the append-only generation log.
type Repository interface {
	Create(ctx context.Context, rec *models.HistoryRecord) (*models.HistoryRecord, error)
	ListByUser(ctx context.Context, user string, limit int) ([]*models.HistoryRecord, error)
	Get(ctx context.Context, user string, id string) (*models.HistoryRecord, error)
}
