package bot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/studyguide/internal/bot/config"
	"github.com/dmitrijs2005/studyguide/internal/generation"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyguide/internal/server/services"
)

// seams for tests
var (
	sqlOpen   = sql.Open
	newBotAPI = func(token string) (API, string, error) {
		api, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			return nil, "", err
		}
		return api, api.Self.UserName, nil
	}
)

var ErrNoToken = errors.New("TOKEN_BOT is not set")

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	bot    *Bot
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(logging.ParseLevel(c.LogLevel))

	if c.TelegramToken == "" {
		return nil, ErrNoToken
	}
	if c.OpenAIKey == "" {
		logger.Warn(ctx, "OPENAI_API_KEY is not set, generation requests will fail")
	}

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

	api, name, err := newBotAPI(c.TelegramToken)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("telegram init error: %w", err)
	}
	if tg, ok := api.(*tgbotapi.BotAPI); ok {
		tg.Debug = c.Debug
	}
	logger.Info(ctx, "authorized on telegram", "bot", name)

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
		bot: New(api, services.NewGenerationService(curriculum, history, gateway, logger),
			curriculum, logger, c.GenerationTimeout, c.PollTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run polls Telegram until a signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting bot...")
	app.initSignalHandler(cancelFunc)

	if err := app.bot.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "Bot stopped")
}
