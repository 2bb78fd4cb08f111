package telegram_stars

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/telegram"
	paymentPort "github.com/Kiranxer/k-Anony/internal/ports/payment"
)

// Provider реализует IPaymentProvider для Telegram Stars
type Provider struct {
	telegramClient *telegram.Client
	log            *slog.Logger
}

// NewProvider создаёт новый провайдер для Telegram Stars
func NewProvider(telegramClient *telegram.Client, log *slog.Logger) *Provider {
	return &Provider{
		telegramClient: telegramClient,
		log:            log,
	}
}

// CreateInvoice выставляет счёт пользователю через Telegram Stars
func (p *Provider) CreateInvoice(ctx context.Context, req paymentPort.CreateInvoiceRequest) (*paymentPort.CreateInvoiceResult, error) {
	// Для Stars это всегда одна позиция
	prices := []telegram.LabeledPrice{
		{
			Label:  req.ProductTitle,
			Amount: req.Amount,
		},
	}

	invoiceReq := telegram.SendInvoiceRequest{
		ChatID:      req.ChatID,
		Title:       req.ProductTitle,
		Description: req.Description,
		Payload:     req.Payload,
		Currency:    req.Currency, // "XTR" для Stars
		Prices:      prices,
	}

	messageID, err := p.telegramClient.SendInvoice(ctx, invoiceReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send invoice: %w", err)
	}

	// Для Telegram Stars invoice_id = message_id отправленного invoice
	return &paymentPort.CreateInvoiceResult{
		InvoiceID: fmt.Sprintf("%d", messageID),
	}, nil
}

// ConfirmPreCheckout подтверждает или отклоняет pre_checkout_query
func (p *Provider) ConfirmPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage *string) error {
	if err := p.telegramClient.AnswerPreCheckoutQuery(ctx, queryID, ok, errorMessage); err != nil {
		return fmt.Errorf("failed to answer pre_checkout_query: %w", err)
	}

	p.log.Debug("pre_checkout confirmed",
		"query_id", queryID,
		"ok", ok,
	)
	return nil
}
