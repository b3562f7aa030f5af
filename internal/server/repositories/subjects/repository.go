package subjects

import (
	"context"

	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

// Repository reads the curriculum. Subjects are seeded outside the
// application and never written by it.
type Repository interface {
	List(ctx context.Context) ([]*models.Subject, error)
	Get(ctx context.Context, id int64) (*models.Subject, error)
}
