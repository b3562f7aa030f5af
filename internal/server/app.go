// Package server wires configuration, storage, the generation gateway and
// the transports (gRPC service and HTTP side surface) into a runnable app
// with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studyguide/internal/generation"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/config"
	"github.com/dmitrijs2005/studyguide/internal/server/httpapi"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyguide/internal/server/services"

	gs "github.com/dmitrijs2005/studyguide/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services gs.Services
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(logging.ParseLevel(c.LogLevel))

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	if c.OpenAIKey == "" {
		logger.Warn(ctx, "OPENAI_API_KEY is not set, generation requests will fail")
	}

	gateway := generation.NewGateway(generation.NewOpenAICompleter(generation.OpenAIConfig{
		APIKey:    c.OpenAIKey,
		Model:     c.OpenAIModel,
		BaseURL:   c.OpenAIBaseURL,
		MaxTokens: c.OpenAIMaxTokens,
	}), logger, c.GenerationTimeout)

	curriculum := services.NewCurriculumService(db, rm)
	history := services.NewHistoryService(db, rm)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		services: gs.Services{
			Credentials: services.NewCredentialService(db, rm, c.AllowedDomain, logger),
			Curriculum:  curriculum,
			Generator:   services.NewGenerationService(curriculum, history, gateway, logger),
			History:     history,
			Exporter:    services.NewExportService(history, c),
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.config.BotUserName, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a transport fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
