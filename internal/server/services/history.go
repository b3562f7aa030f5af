package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/repomanager"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// HistoryService appends to and reads the generation log.
type HistoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHistoryService(db *sql.DB, m repomanager.RepositoryManager) *HistoryService {
	return &HistoryService{db: db, repomanager: m}
}

func (s *HistoryService) Record(ctx context.Context, rec *models.HistoryRecord) (*models.HistoryRecord, error) {
	return s.repomanager.History(s.db).Create(ctx, rec)
}

// List returns the newest records of user. limit is clamped to
// [1, MaxHistoryLimit]; zero or less means DefaultHistoryLimit.
func (s *HistoryService) List(ctx context.Context, user string, limit int) ([]*models.HistoryRecord, error) {
	if user == "" {
		return nil, common.ErrUnauthorized
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repomanager.History(s.db).ListByUser(ctx, user, limit)
}

func (s *HistoryService) Get(ctx context.Context, user, id string) (*models.HistoryRecord, error) {
	if user == "" {
		return nil, common.ErrUnauthorized
	}
	return s.repomanager.History(s.db).Get(ctx, user, id)
}
