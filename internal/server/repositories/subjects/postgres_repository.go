package subjects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

type PostgresRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

func NewPostgresRepository(db dbx.DBTX, log logging.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, log: log}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubject(row scanner) (*models.Subject, error) {
	var (
		s      models.Subject
		topics []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Semester, &topics); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(topics, &s.Topics); err != nil {
		return nil, fmt.Errorf("%w: topics of subject %d: %v", common.ErrValidation, s.ID, err)
	}
	if err := models.Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns every valid subject ordered by semester and name. Rows that
// fail validation are logged and skipped.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Subject, error) {
	query := `SELECT id, nombre, semestre, temas FROM materias
		ORDER BY semestre, nombre
		`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			if errors.Is(err, common.ErrValidation) {
				r.log.Warn(ctx, "skipping invalid subject", "error", err)
				continue
			}
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Subject, error) {
	query := `SELECT id, nombre, semestre, temas FROM materias
		WHERE id = $1
		`
	s, err := scanSubject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
