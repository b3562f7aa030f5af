package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.HistoryRecord) (*models.HistoryRecord, error) {
	if err := models.Validate(rec); err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO historial (usuario, tipo, peticion, respuesta)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, rec.User, string(rec.Kind), rec.Prompt, rec.Response).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

// ListByUser returns at most limit records of user, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, user string, limit int) ([]*models.HistoryRecord, error) {
	query := `SELECT id, usuario, tipo, peticion, respuesta, created_at FROM historial
		WHERE usuario = $1
		ORDER BY created_at DESC
		LIMIT $2
		`
	rows, err := r.db.QueryContext(ctx, query, user, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.HistoryRecord
	for rows.Next() {
		var item models.HistoryRecord
		if err := rows.Scan(&item.ID, &item.User, &item.Kind, &item.Prompt, &item.Response, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Get returns record id if it belongs to user.
func (r *PostgresRepository) Get(ctx context.Context, user string, id string) (*models.HistoryRecord, error) {
	query := `SELECT id, usuario, tipo, peticion, respuesta, created_at FROM historial
		WHERE id = $1 AND usuario = $2
		`
	var item models.HistoryRecord
	err := r.db.QueryRowContext(ctx, query, id, user).
		Scan(&item.ID, &item.User, &item.Kind, &item.Prompt, &item.Response, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}
