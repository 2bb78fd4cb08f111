package telegram

import (
	"log/slog"

	TgClient "github.com/Kiranxer/k-Anony/internal/adapters/secondary/telegram"
	"github.com/Kiranxer/k-Anony/internal/ports/service"
)

// Service роутит обновления Telegram в бизнес-логику бота
type Service struct {
	Bot            service.IBotService
	TelegramClient *TgClient.Client
	Log            *slog.Logger
}

func New(bot service.IBotService, telegramClient *TgClient.Client, log *slog.Logger) *Service {
	return &Service{
		Bot:            bot,
		TelegramClient: telegramClient,
		Log:            log,
	}
}
