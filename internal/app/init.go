package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	server "github.com/admin/tg-bots/info-bot/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/info-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/info-bot/internal/adapters/primary/http/controllers/telegram"
	lookupAdapter "github.com/admin/tg-bots/info-bot/internal/adapters/secondary/lookup"
	redisAdapter "github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/info-bot/internal/adapters/secondary/storage/sqlite"
	tgAdapter "github.com/admin/tg-bots/info-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/info-bot/internal/domain"
	"github.com/admin/tg-bots/info-bot/internal/ports/cache"
	"github.com/admin/tg-bots/info-bot/internal/ports/repository"
	historyRepo "github.com/admin/tg-bots/info-bot/internal/repository/history"
	protectedRepo "github.com/admin/tg-bots/info-bot/internal/repository/protected"
	userRepo "github.com/admin/tg-bots/info-bot/internal/repository/user"
	telegramService "github.com/admin/tg-bots/info-bot/internal/services/telegram"
	lookupUsecase "github.com/admin/tg-bots/info-bot/internal/usecases/lookup"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	Cache           cache.Cache
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initSqlite()
	if err != nil {
		return nil, fmt.Errorf("failed to init sqlite: %w", err)
	}

	repos := a.initRepositories(db)
	responseCache := a.initCache()

	tgClient := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)
	if err := a.registerBotCommands(ctx, tgClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	lookupClient := lookupAdapter.NewClient(a.Cfg.Lookup, a.Log)

	usecase := lookupUsecase.New(
		repos.User,
		repos.History,
		repos.Protected,
		tgClient,
		lookupClient,
		responseCache, // может быть nil
		a.cacheTTL(),
		domain.LookupTypes,
		a.Cfg.Bot.AdminID,
		a.Cfg.Bot.ChannelID,
		a.Cfg.Bot.ChannelLink,
		a.Log,
	)

	tgService := telegramService.New(usecase, a.Log)

	httpServer := a.initHTTP(db, tgService)

	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		Cache:           responseCache,
	}, nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	User      repository.IUserRepo
	History   repository.IHistoryRepo
	Protected repository.IProtectedRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := sqlite.NewDB(db)
	return &repositories{
		User:      userRepo.New(persistenceLayer, a.Log),
		History:   historyRepo.New(persistenceLayer, a.Log),
		Protected: protectedRepo.New(persistenceLayer, a.Log),
	}
}

// initCache инициализирует Redis кэш ответов (опциональный)
func (a *App) initCache() cache.Cache {
	if a.Cfg.Redis == nil {
		return nil
	}

	redisClient, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		return nil
	}

	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(redisClient)
}

// cacheTTL возвращает TTL кэшированных ответов
func (a *App) cacheTTL() time.Duration {
	if a.Cfg.Redis == nil {
		return 0
	}
	return time.Duration(a.Cfg.Redis.ResponseTTL) * time.Minute
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *sqlx.DB, tgService *telegramService.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.SecretToken, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	tgClient *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		if err := a.setupWebhook(ctx, tgClient); err != nil {
			return nil, fmt.Errorf("failed to setup webhook: %w", err)
		}
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")

	handler := func(ctx context.Context, update *domain.Update) error {
		return tgService.HandleUpdate(ctx, update)
	}

	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, handler, a.Log), nil
}

// setupWebhook устанавливает webhook бота
func (a *App) setupWebhook(ctx context.Context, tgClient *tgAdapter.Client) error {
	webhookURL := fmt.Sprintf("%s/webhook", a.Cfg.Telegram.WebhookURL)

	if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.SecretToken); err != nil {
		a.Log.Error("failed to set webhook", "error", err, "webhook_url", webhookURL)
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
	return nil
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "help", Description: "Show help guide"},
		{Command: "credits", Description: "Check your credits"},
		{Command: "stats", Description: "Your usage statistics"},
	}

	for _, lt := range domain.LookupTypes {
		commands = append(commands, tgAdapter.BotCommand{
			Command:     lt.Command,
			Description: lt.Name,
		})
	}

	return client.SetMyCommands(ctx, commands)
}
