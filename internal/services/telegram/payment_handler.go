package telegram

import (
	"context"
	"fmt"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// HandlePreCheckoutQuery обрабатывает pre_checkout_query от Telegram (платежи Stars)
func (s *Service) HandlePreCheckoutQuery(ctx context.Context, query *domain.PreCheckoutQuery) error {
	if query == nil || query.From == nil {
		s.Log.Error("pre_checkout_query is nil or has no from")
		return fmt.Errorf("invalid pre_checkout_query")
	}

	if err := s.Bot.HandlePreCheckoutQuery(ctx, query); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to handle pre_checkout_query: %w", err))
	}

	return nil
}

// HandleSuccessfulPayment обрабатывает successful_payment от Telegram (платежи Stars)
func (s *Service) HandleSuccessfulPayment(ctx context.Context, message *domain.Message) error {
	if message == nil || message.SuccessfulPayment == nil {
		s.Log.Error("message or successful_payment is nil")
		return fmt.Errorf("invalid successful_payment")
	}

	if message.From == nil {
		s.Log.Error("message has no from")
		return fmt.Errorf("message has no from")
	}

	if err := s.Bot.HandleSuccessfulPayment(ctx, message.From, message.SuccessfulPayment); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to handle successful_payment: %w", err))
	}

	return nil
}
