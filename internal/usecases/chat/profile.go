package chat

import (
	"context"
	"strings"
	"time"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

// HandleGender сохраняет пол пользователя
func (s *Service) HandleGender(ctx context.Context, from *domain.TelegramUser, args string) error {
	gender, ok := domain.ParseGender(args)
	if !ok {
		return s.sendMessage(ctx, from.ID, texts.GenderUsage)
	}

	s.mu.Lock()
	profile := s.state.GetOrCreateProfile(from.ID)
	profile.Gender = gender
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	return s.sendMessage(ctx, from.ID, texts.FormatGenderSet(gender))
}

// HandleInterests сохраняет список интересов. Пустой аргумент очищает список
func (s *Service) HandleInterests(ctx context.Context, from *domain.TelegramUser, args string) error {
	if strings.TrimSpace(args) == "" {
		return s.sendMessage(ctx, from.ID, texts.InterestsUsage)
	}

	interests := domain.NormalizeInterests(args)

	s.mu.Lock()
	profile := s.state.GetOrCreateProfile(from.ID)
	profile.Interests = interests
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	if len(interests) == 0 {
		return s.sendMessage(ctx, from.ID, texts.InterestsCleared)
	}

	return s.sendMessage(ctx, from.ID, texts.FormatInterestsSet(interests))
}

// HandleProfile показывает карточку анкеты
func (s *Service) HandleProfile(ctx context.Context, from *domain.TelegramUser) error {
	now := time.Now()

	s.mu.Lock()
	profile := s.state.GetOrCreateProfile(from.ID).Clone()
	s.mu.Unlock()

	active := domain.PremiumActive(profile, now)
	hours := domain.PremiumRemainingHours(profile, now)

	return s.sendMessage(ctx, from.ID, texts.FormatProfile(profile, active, hours))
}
