package cli

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/config"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_DatabaseError(t *testing.T) {
	old := initDatabase
	t.Cleanup(func() { initDatabase = old })
	initDatabase = func(ctx context.Context, dsn string) (*sql.DB, error) {
		return nil, errors.New("disk full")
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LogFile = filepath.Join(t.TempDir(), "client.log")

	app, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.FileExists(t, cfg.LogFile)
}

func TestNewApp_BadLogFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "client.log")

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestRun_ContextCancelIsCleanExit(t *testing.T) {
	old := runProgram
	t.Cleanup(func() { runProgram = old })

	var got tea.Model
	runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		got = m
		return m, tea.ErrProgramKilled
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	app := &App{config: cfg, logger: logging.NewNop(), auth: &fakeAuth{}, study: &fakeStudy{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Run(ctx))
	require.IsType(t, model{}, got)

	require.ErrorIs(t, app.Run(context.Background()), tea.ErrProgramKilled)
}
