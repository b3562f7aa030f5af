package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/client"
	"github.com/dmitrijs2005/studyguide/internal/client/config"
	"github.com/dmitrijs2005/studyguide/internal/client/repositories/prefs"
	"github.com/dmitrijs2005/studyguide/internal/client/services"
	"github.com/dmitrijs2005/studyguide/internal/logging"
)

const localDatabase = "studyguide.db"

// seams for tests
var (
	initDatabase = client.InitDatabase
	runProgram   = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(m, opts...).Run()
	}
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	logFile *os.File
	db      *sql.DB
	auth    services.AuthService
	study   services.StudyService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := logging.NewText(f, logging.ParseLevel(c.LogLevel))

	db, err := initDatabase(ctx, localDatabase)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		_ = f.Close()
		return nil, err
	}

	apiClient, err := client.NewStudyGuideClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		_ = f.Close()
		return nil, err
	}

	return &App{
		config:  c,
		logger:  logger,
		logFile: f,
		db:      db,
		auth:    services.NewAuthService(apiClient, prefs.NewSQLiteRepository(db), logger),
		study:   services.NewStudyService(apiClient),
	}, nil
}

// Run shows the screens until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	m := newModel(ctx, a.auth, a.study, a.logger, a.config.RequestTimeout, a.config.OnlineCheckInterval)
	_, err := runProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (a *App) close() {
	if err := a.auth.Close(); err != nil {
		a.logger.Warn(context.Background(), "close client", "error", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
