package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/ports/payment"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

const girlsFilterProductID = "girls_filter"

// HandlePremiumStatus показывает состояние girls-only фильтра
func (s *Service) HandlePremiumStatus(ctx context.Context, from *domain.TelegramUser) error {
	now := time.Now()

	s.mu.Lock()
	profile := s.state.GetOrCreateProfile(from.ID).Clone()
	s.mu.Unlock()

	if !domain.PremiumActive(profile, now) {
		return s.sendMessage(ctx, from.ID, texts.FormatPremiumNone(s.PremiumPrice))
	}

	return s.sendMessage(ctx, from.ID, texts.FormatPremiumActive(domain.PremiumRemainingHours(profile, now)))
}

// HandleGirls выставляет счёт в Telegram Stars за girls-only фильтр
func (s *Service) HandleGirls(ctx context.Context, from *domain.TelegramUser) error {
	s.mu.Lock()
	banned := s.state.IsBanned(from.ID)
	s.mu.Unlock()
	if banned {
		return s.sendMessage(ctx, from.ID, texts.Banned)
	}

	payload := uuid.New().String()
	result, err := s.PaymentProvider.CreateInvoice(ctx, payment.CreateInvoiceRequest{
		ChatID:       from.ID,
		ProductID:    girlsFilterProductID,
		ProductTitle: texts.GirlsInvoiceTitle,
		Description:  texts.FormatGirlsInvoiceDescription(int(s.PremiumDuration.Hours())),
		Amount:       s.PremiumPrice,
		Currency:     "XTR",
		Payload:      payload,
	})
	if err != nil {
		s.Log.Error("failed to create invoice", "error", err, "user_id", from.ID)
		return s.sendMessage(ctx, from.ID, texts.InvoiceError)
	}

	s.Log.Info("premium invoice sent",
		"user_id", from.ID,
		"amount", s.PremiumPrice,
		"invoice_id", result.InvoiceID,
		"payload", payload)

	return nil
}

// HandlePreCheckoutQuery подтверждает платёж. Товар цифровой и всегда
// доступен, так что отказывать нет причин
func (s *Service) HandlePreCheckoutQuery(ctx context.Context, query *domain.PreCheckoutQuery) error {
	if err := s.PaymentProvider.ConfirmPreCheckout(ctx, query.ID, true, nil); err != nil {
		return fmt.Errorf("failed to confirm pre_checkout query: %w", err)
	}

	s.Log.Info("pre_checkout confirmed",
		"query_id", query.ID,
		"user_id", query.From.ID,
		"amount", query.TotalAmount)

	return nil
}

// HandleSuccessfulPayment включает girls-only фильтр после оплаты.
// Срок не суммируется с остатком, а отсчитывается заново
func (s *Service) HandleSuccessfulPayment(ctx context.Context, from *domain.TelegramUser, pay *domain.SuccessfulPayment) error {
	s.mu.Lock()
	profile := s.state.GetOrCreateProfile(from.ID)
	domain.GrantPremium(profile, time.Now(), s.PremiumDuration)
	snap := s.state.Snapshot()
	s.mu.Unlock()
	s.persist(ctx, snap)

	s.Log.Info("premium granted",
		"user_id", from.ID,
		"amount", pay.TotalAmount,
		"currency", pay.Currency,
		"charge_id", pay.TelegramPaymentChargeID)

	return s.sendMessage(ctx, from.ID, texts.PaymentSuccess)
}
