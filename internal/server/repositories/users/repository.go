package users

import (
	"context"

	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

// Repository persists accounts in the credential store.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByUsername(ctx context.Context, username string) ([]*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
}
