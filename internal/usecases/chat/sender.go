package chat

import (
	"context"
	"fmt"
)

// sendMessage отправляет текст пользователю и логирует ошибку доставки
func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message", "error", err, "chat_id", chatID)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
