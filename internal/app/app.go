package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Kiranxer/k-Anony/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running anon chat bot")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps, err := a.initDependencies(runCtx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	// /shutdown от админа гасит приложение тем же путём, что и SIGTERM
	deps.ChatService.SetShutdownFunc(cancel)

	return a.runServices(runCtx, deps)
}
