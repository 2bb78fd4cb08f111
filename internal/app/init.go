package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/Kiranxer/k-Anony/internal/adapters/primary/http"
	healthcheckController "github.com/Kiranxer/k-Anony/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/Kiranxer/k-Anony/internal/adapters/primary/http/controllers/telegram"
	alerterAdapter "github.com/Kiranxer/k-Anony/internal/adapters/secondary/alerter"
	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/payment/telegram_stars"
	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/storage/file"
	tgAdapter "github.com/Kiranxer/k-Anony/internal/adapters/secondary/telegram"
	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/ports/service"
	jobScheduler "github.com/Kiranxer/k-Anony/internal/services/jobs"
	telegramService "github.com/Kiranxer/k-Anony/internal/services/telegram"
	chatUsecase "github.com/Kiranxer/k-Anony/internal/usecases/chat"
)

type Dependencies struct {
	Store           *file.Store
	HTTPServer      *http.Server
	ChatService     *chatUsecase.Service
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	store := file.NewStore(a.Cfg.Storage, a.Log)

	tgClient, err := a.initTelegram(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram: %w", err)
	}

	alerterSvc := a.initAlerter()
	paymentProvider := telegram_stars.NewProvider(tgClient, a.Log)

	chatService := chatUsecase.New(
		store,
		tgClient,
		paymentProvider,
		alerterSvc, // может быть nil
		a.Cfg.Chat.AdminIDs,
		a.Cfg.Chat.PremiumStarsPrice,
		a.Cfg.Chat.PremiumDuration(),
		store.Path(),
		a.Log,
	)
	chatService.LoadState(ctx)

	tgService := telegramService.New(chatService, tgClient, a.Log)

	httpServer := a.initHTTP(store, tgService)

	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	scheduler := a.initJobScheduler(alerterSvc, chatService)

	return &Dependencies{
		Store:           store,
		HTTPServer:      httpServer,
		ChatService:     chatService,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		JobScheduler:    scheduler,
	}, nil
}

// initTelegram инициализирует Telegram клиент и регистрирует команды бота
func (a *App) initTelegram(ctx context.Context) (*tgAdapter.Client, error) {
	if a.Cfg.Telegram == nil || a.Cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	client := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	if err := a.registerBotCommands(ctx, client); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	return client, nil
}

// initAlerter инициализирует отправку алертов (опционально)
func (a *App) initAlerter() service.IAlerterService {
	if a.Cfg.Alerter == nil || a.Cfg.Alerter.BotToken == "" || a.Cfg.Alerter.ChatID == 0 {
		a.Log.Info("alerter is not configured, alerts disabled")
		return nil
	}

	return alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(store *file.Store, tgService *telegramService.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(store, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
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

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	chatService *chatUsecase.Service,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	autosaver := jobScheduler.NewAutosaver(chatService, a.Cfg.Chat.AutosaveInterval, a.Log)
	scheduler.Register(autosaver)
	a.Log.Info("state autosaver job registered", "interval", a.Cfg.Chat.AutosaveInterval)

	return scheduler
}

// setupWebhook устанавливает webhook бота
func (a *App) setupWebhook(ctx context.Context, tgClient *tgAdapter.Client) error {
	if a.Cfg.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required when use_webhook is true")
	}
	if a.Cfg.Telegram.WebhookSecret == "" {
		return fmt.Errorf("webhook_secret is required when use_webhook is true")
	}

	webhookURL := fmt.Sprintf("%s/webhook", a.Cfg.Telegram.WebhookURL)

	if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	a.Log.Info("webhook set successfully", "webhook_url", webhookURL)

	return nil
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Find a partner"},
		{Command: "next", Description: "Next partner"},
		{Command: "stop", Description: "End the chat"},
		{Command: "gender", Description: "Set your gender"},
		{Command: "interests", Description: "Set your interests"},
		{Command: "profile", Description: "Show your profile"},
		{Command: "girls", Description: "Chat with girls only"},
		{Command: "premium", Description: "Premium status"},
		{Command: "help", Description: "Show help"},
	}

	return client.SetMyCommands(ctx, commands)
}
