package chat

import (
	"context"
	"time"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

// HandleStart приветствует пользователя и запускает подбор пары
func (s *Service) HandleStart(ctx context.Context, from *domain.TelegramUser) error {
	if err := s.sendMessage(ctx, from.ID, texts.Welcome); err != nil {
		return err
	}

	return s.matchAndNotify(ctx, from.ID)
}

// HandleNext разрывает текущую пару и сразу ищет новую
func (s *Service) HandleNext(ctx context.Context, from *domain.TelegramUser) error {
	s.mu.Lock()
	if s.state.IsBanned(from.ID) {
		s.mu.Unlock()
		return s.sendMessage(ctx, from.ID, texts.Banned)
	}
	partnerID, hadPartner := s.unpairLocked(from.ID)
	var snap *domain.Snapshot
	if hadPartner {
		snap = s.state.Snapshot()
	}
	s.mu.Unlock()

	if snap != nil {
		s.persist(ctx, snap)
	}
	if hadPartner {
		s.notifyPartnerLeft(ctx, partnerID)
	}

	if err := s.sendMessage(ctx, from.ID, texts.NextSearching); err != nil {
		s.Log.Warn("failed to ack next", "error", err, "chat_id", from.ID)
	}

	return s.matchAndNotify(ctx, from.ID)
}

// HandleStop завершает чат и убирает пользователя из очереди
func (s *Service) HandleStop(ctx context.Context, from *domain.TelegramUser) error {
	s.mu.Lock()
	partnerID, hadPartner := s.unpairLocked(from.ID)
	dequeued := s.state.RemoveWaiting(from.ID)
	var snap *domain.Snapshot
	if hadPartner || dequeued {
		snap = s.state.Snapshot()
	}
	s.mu.Unlock()

	if snap != nil {
		s.persist(ctx, snap)
	}
	if hadPartner {
		s.notifyPartnerLeft(ctx, partnerID)
	}

	return s.sendMessage(ctx, from.ID, texts.Stopped)
}

// matchAndNotify прогоняет подбор и рассылает уведомления по исходу
func (s *Service) matchAndNotify(ctx context.Context, userID int64) error {
	s.mu.Lock()
	outcome := s.requestMatchLocked(userID, time.Now())
	var snap *domain.Snapshot
	if outcome.Kind != domain.MatchRejectedBanned && outcome.Kind != domain.MatchAlreadyPaired {
		snap = s.state.Snapshot()
	}
	s.mu.Unlock()

	if snap != nil {
		s.persist(ctx, snap)
	}

	switch outcome.Kind {
	case domain.MatchRejectedBanned:
		return s.sendMessage(ctx, userID, texts.Banned)
	case domain.MatchAlreadyPaired:
		return s.sendMessage(ctx, userID, texts.AlreadyChatting)
	case domain.MatchQueuedEmpty:
		return s.sendMessage(ctx, userID, texts.WaitingEmptyQueue)
	case domain.MatchQueuedNoCandidate:
		return s.sendMessage(ctx, userID, texts.WaitingNoCandidate)
	case domain.MatchPaired:
		// пара уже зафиксирована, ошибки доставки уведомлений её не откатывают
		if err := s.sendMessage(ctx, userID, texts.FormatPaired(outcome.ForRequester, outcome.Shared)); err != nil {
			s.Log.Warn("failed to notify requester about pair", "error", err, "chat_id", userID)
		}
		if err := s.sendMessage(ctx, outcome.PartnerID, texts.FormatPaired(outcome.ForPartner, outcome.Shared)); err != nil {
			s.Log.Warn("failed to notify partner about pair", "error", err, "chat_id", outcome.PartnerID)
		}
		s.Log.Info("pair created",
			"user_id", userID,
			"partner_id", outcome.PartnerID,
			"shared_interests", len(outcome.Shared))
	}

	return nil
}

// requestMatchLocked выполняет один цикл подбора: либо ставит пользователя в
// очередь, либо связывает его с лучшим кандидатом по числу общих интересов.
// При равном счёте побеждает тот, кто дольше ждёт
func (s *Service) requestMatchLocked(userID int64, now time.Time) domain.MatchOutcome {
	if s.state.IsBanned(userID) {
		return domain.MatchOutcome{Kind: domain.MatchRejectedBanned}
	}

	profile := s.state.GetOrCreateProfile(userID)
	if profile.HasPartner() {
		return domain.MatchOutcome{Kind: domain.MatchAlreadyPaired}
	}

	s.state.RemoveWaiting(userID)
	if s.state.WaitingLen() == 0 {
		s.state.EnqueueWaiting(userID)
		return domain.MatchOutcome{Kind: domain.MatchQueuedEmpty}
	}

	var bestID int64
	bestScore := -1
	for _, candidateID := range s.state.Waiting() {
		candidate, ok := s.state.Profile(candidateID)
		if !ok || candidate.HasPartner() || s.state.IsBanned(candidateID) {
			continue
		}
		if !canMatch(profile, candidate, now) {
			continue
		}
		if score := interestScore(profile, candidate); score > bestScore {
			bestScore = score
			bestID = candidateID
		}
	}

	if bestScore < 0 {
		s.state.EnqueueWaiting(userID)
		return domain.MatchOutcome{Kind: domain.MatchQueuedNoCandidate}
	}

	s.state.RemoveWaiting(bestID)
	shared := s.pairLocked(userID, bestID)
	partner, _ := s.state.Profile(bestID)

	return domain.MatchOutcome{
		Kind:         domain.MatchPaired,
		PartnerID:    bestID,
		Shared:       shared,
		ForRequester: partnerView(partner),
		ForPartner:   partnerView(profile),
	}
}

// canMatch проверяет, подходит ли кандидат инициатору. Фильтр направленный:
// активный girls-only у инициатора отсекает всех, кроме девушек, а фильтр
// самого кандидата здесь не учитывается
func canMatch(requester, candidate *domain.Profile, now time.Time) bool {
	if domain.PremiumActive(requester, now) && candidate.Gender != domain.GenderGirl {
		return false
	}

	return true
}

// interestScore считает число общих интересов
func interestScore(a, b *domain.Profile) int {
	score := 0
	for _, interest := range a.Interests {
		if b.HasInterest(interest) {
			score++
		}
	}

	return score
}

// pairLocked связывает две анкеты. Обе стороны обязаны быть свободны
func (s *Service) pairLocked(firstID, secondID int64) []string {
	first := s.state.GetOrCreateProfile(firstID)
	second := s.state.GetOrCreateProfile(secondID)

	fID, sID := firstID, secondID
	first.PartnerID = &sID
	second.PartnerID = &fID

	return first.SharedInterests(second)
}

// unpairLocked развязывает пару с обеих сторон. Возвращает id бывшего
// партнёра. В очередь никого не ставит, это решение вызывающего
func (s *Service) unpairLocked(userID int64) (int64, bool) {
	profile, ok := s.state.Profile(userID)
	if !ok || !profile.HasPartner() {
		return 0, false
	}

	partnerID := *profile.PartnerID
	profile.PartnerID = nil
	if partner, ok := s.state.Profile(partnerID); ok {
		partner.PartnerID = nil
	}

	return partnerID, true
}

func (s *Service) notifyPartnerLeft(ctx context.Context, partnerID int64) {
	if err := s.TelegramClient.SendMessage(ctx, partnerID, texts.PartnerLeft); err != nil {
		s.Log.Warn("failed to notify abandoned partner", "error", err, "chat_id", partnerID)
	}
}

func partnerView(profile *domain.Profile) domain.PartnerView {
	view := domain.PartnerView{Gender: profile.Gender}
	view.Interests = append(view.Interests, profile.Interests...)

	return view
}
