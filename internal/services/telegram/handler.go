package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.PreCheckoutQuery != nil {
		return s.HandlePreCheckoutQuery(ctx, update.PreCheckoutQuery)
	}

	if update.Message != nil {
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat != nil && message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	if message.SuccessfulPayment != nil {
		return s.HandleSuccessfulPayment(ctx, message)
	}

	if message.Text != nil {
		return s.routeTextMessage(ctx, message.From, *message.Text, updateID)
	}

	return nil
}

// routeTextMessage роутит в команду/текст
func (s *Service) routeTextMessage(ctx context.Context, from *domain.TelegramUser, text string, updateID int64) error {
	if IsCommand(text) {
		return s.Bot.HandleCommand(ctx, from, ParseCommand(text), ParseArgs(text), updateID)
	}

	return s.Bot.HandleText(ctx, from, text, updateID)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

// ParseArgs возвращает хвост команды после первого пробела
func ParseArgs(text string) string {
	if idx := strings.Index(text, " "); idx != -1 {
		return strings.TrimSpace(text[idx+1:])
	}

	return ""
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
