package chat

import (
	"context"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

// HandleText пересылает обычное сообщение собеседнику.
// Отправка идёт вне критической секции, чтобы не держать мьютекс на сети
func (s *Service) HandleText(ctx context.Context, from *domain.TelegramUser, text string, updateID int64) error {
	s.mu.Lock()
	banned := s.state.IsBanned(from.ID)
	var partnerID int64
	hasPartner := false
	if !banned {
		if profile, ok := s.state.Profile(from.ID); ok && profile.HasPartner() {
			partnerID = *profile.PartnerID
			hasPartner = true
		}
	}
	s.mu.Unlock()

	if banned {
		return s.sendMessage(ctx, from.ID, texts.Banned)
	}
	if !hasPartner {
		return s.sendMessage(ctx, from.ID, texts.NotInChat)
	}

	err := s.TelegramClient.SendMessage(ctx, partnerID, text)
	if err == nil {
		return nil
	}
	s.Log.Info("relay delivery failed, breaking pair",
		"error", err,
		"user_id", from.ID,
		"partner_id", partnerID,
		"update_id", updateID)

	// партнёр недоступен: разрываем пару с обеих сторон и ищем нового.
	// Недоступную сторону не уведомляем, ей всё равно не доставить
	s.mu.Lock()
	s.unpairLocked(from.ID)
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	if err := s.sendMessage(ctx, from.ID, texts.DeliveryFailed); err != nil {
		s.Log.Warn("failed to report delivery failure", "error", err, "chat_id", from.ID)
	}

	return s.matchAndNotify(ctx, from.ID)
}
