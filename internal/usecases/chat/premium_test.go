package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

func TestGirlsSendsInvoice(t *testing.T) {
	svc, tg, _, provider := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleGirls(ctx, tgUser(1)))

	require.Len(t, provider.invoices, 1)
	invoice := provider.invoices[0]
	assert.Equal(t, int64(1), invoice.ChatID)
	assert.Equal(t, int64(300), invoice.Amount)
	assert.Equal(t, "XTR", invoice.Currency)
	assert.Equal(t, texts.FormatGirlsInvoiceDescription(14), invoice.Description)
	assert.NotEmpty(t, invoice.Payload)
	assert.Empty(t, tg.messagesTo(1))
}

func TestGirlsWhileBanned(t *testing.T) {
	svc, tg, _, provider := newTestService(t)
	ctx := context.Background()

	svc.state.Ban(1)

	require.NoError(t, svc.HandleGirls(ctx, tgUser(1)))

	assert.Empty(t, provider.invoices)
	assert.Equal(t, texts.Banned, tg.lastMessageTo(1))
}

func TestPreCheckoutIsConfirmed(t *testing.T) {
	svc, _, _, provider := newTestService(t)
	ctx := context.Background()

	query := &domain.PreCheckoutQuery{
		ID:          "q-1",
		From:        tgUser(1),
		Currency:    "XTR",
		TotalAmount: 300,
	}

	require.NoError(t, svc.HandlePreCheckoutQuery(ctx, query))

	assert.Equal(t, []string{"q-1"}, provider.confirmed)
}

func TestSuccessfulPaymentGrantsPremium(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	pay := &domain.SuccessfulPayment{
		Currency:                "XTR",
		TotalAmount:             300,
		InvoicePayload:          "payload-1",
		TelegramPaymentChargeID: "charge-1",
	}

	require.NoError(t, svc.HandleSuccessfulPayment(ctx, tgUser(1), pay))

	profile := svc.state.GetOrCreateProfile(1)
	assert.True(t, domain.PremiumActive(profile, time.Now()))
	assert.Equal(t, texts.PaymentSuccess, tg.lastMessageTo(1))
	assert.Equal(t, 1, store.saveCount)

	// в снапшоте срок уже выставлен
	require.NotNil(t, store.saved)
	assert.Equal(t, profile.PremiumGirlsUntil, store.saved.Users["1"].PremiumGirlsUntil)
}

func TestPremiumStatusCommand(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandlePremiumStatus(ctx, tgUser(1)))
	assert.Equal(t, texts.FormatPremiumNone(300), tg.lastMessageTo(1))

	domain.GrantPremium(svc.state.GetOrCreateProfile(1), time.Now(), 14*time.Hour)

	require.NoError(t, svc.HandlePremiumStatus(ctx, tgUser(1)))
	assert.Equal(t, texts.FormatPremiumActive(14), tg.lastMessageTo(1))
}
