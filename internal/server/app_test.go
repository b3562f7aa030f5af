package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/studyguide/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_DBOpenError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	var gotDriver, gotDSN string
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		return nil, errors.New("bad dsn")
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = "postgres://x"

	app, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "db init error: bad dsn")
	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, "postgres://x", gotDSN)
}
