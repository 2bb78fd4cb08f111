package service

import (
	"context"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// IBotService интерфейс бизнес-логики бота для слоя роутинга обновлений
type IBotService interface {
	HandleCommand(ctx context.Context, from *domain.TelegramUser, command string, args string, updateID int64) error
	HandleText(ctx context.Context, from *domain.TelegramUser, text string, updateID int64) error
	HandlePreCheckoutQuery(ctx context.Context, query *domain.PreCheckoutQuery) error
	HandleSuccessfulPayment(ctx context.Context, from *domain.TelegramUser, payment *domain.SuccessfulPayment) error
}
