package chat

import (
	"context"
	"strconv"
	"strings"

	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

// handleBan банит пользователя: рвёт его пару и убирает из очереди
func (s *Service) handleBan(ctx context.Context, adminID int64, args string) error {
	targetID, ok := parseUserID(args)
	if !ok {
		return s.sendMessage(ctx, adminID, texts.BanUsage)
	}

	s.mu.Lock()
	s.state.Ban(targetID)
	partnerID, hadPartner := s.unpairLocked(targetID)
	s.state.RemoveWaiting(targetID)
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	if hadPartner {
		s.notifyPartnerLeft(ctx, partnerID)
	}

	s.Log.Info("user banned", "user_id", targetID, "admin_id", adminID)

	return s.sendMessage(ctx, adminID, texts.FormatBanned(targetID))
}

// handleUnban снимает бан. Повторный вызов безопасен
func (s *Service) handleUnban(ctx context.Context, adminID int64, args string) error {
	targetID, ok := parseUserID(args)
	if !ok {
		return s.sendMessage(ctx, adminID, texts.UnbanUsage)
	}

	s.mu.Lock()
	s.state.Unban(targetID)
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	s.Log.Info("user unbanned", "user_id", targetID, "admin_id", adminID)

	return s.sendMessage(ctx, adminID, texts.FormatUnbanned(targetID))
}

// handleForcePair принудительно связывает двух пользователей,
// предварительно развязав их текущие пары
func (s *Service) handleForcePair(ctx context.Context, adminID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return s.sendMessage(ctx, adminID, texts.ForcePairUsage)
	}
	firstID, okFirst := parseUserID(fields[0])
	secondID, okSecond := parseUserID(fields[1])
	if !okFirst || !okSecond || firstID == secondID {
		return s.sendMessage(ctx, adminID, texts.ForcePairUsage)
	}

	s.mu.Lock()
	displaced := make([]int64, 0, 2)
	if partnerID, ok := s.unpairLocked(firstID); ok && partnerID != secondID {
		displaced = append(displaced, partnerID)
	}
	if partnerID, ok := s.unpairLocked(secondID); ok && partnerID != firstID {
		displaced = append(displaced, partnerID)
	}
	s.state.RemoveWaiting(firstID)
	s.state.RemoveWaiting(secondID)
	shared := s.pairLocked(firstID, secondID)
	forFirst := partnerView(s.state.GetOrCreateProfile(secondID))
	forSecond := partnerView(s.state.GetOrCreateProfile(firstID))
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	for _, partnerID := range displaced {
		s.notifyPartnerLeft(ctx, partnerID)
	}
	if err := s.sendMessage(ctx, firstID, texts.FormatPaired(forFirst, shared)); err != nil {
		s.Log.Warn("failed to notify forced pair", "error", err, "chat_id", firstID)
	}
	if err := s.sendMessage(ctx, secondID, texts.FormatPaired(forSecond, shared)); err != nil {
		s.Log.Warn("failed to notify forced pair", "error", err, "chat_id", secondID)
	}

	s.Log.Info("pair forced", "first_id", firstID, "second_id", secondID, "admin_id", adminID)

	return s.sendMessage(ctx, adminID, texts.FormatForcePaired(firstID, secondID))
}

func parseUserID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
