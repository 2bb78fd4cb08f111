package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

func TestRelayDeliversToPartner(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)

	require.NoError(t, svc.HandleText(ctx, tgUser(1), "hello there", 10))

	assert.Equal(t, []string{"hello there"}, tg.messagesTo(2))
	assert.Empty(t, tg.messagesTo(1))
	// успешная пересылка не трогает состояние и не пишет на диск
	assert.Equal(t, 0, store.saveCount)
}

func TestRelayWithoutPartner(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleText(ctx, tgUser(1), "anyone here?", 11))

	assert.Equal(t, texts.NotInChat, tg.lastMessageTo(1))
}

func TestRelayFromBannedUser(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	svc.state.Ban(1)
	pairUsers(svc, 1, 2)

	require.NoError(t, svc.HandleText(ctx, tgUser(1), "hi", 12))

	assert.Equal(t, texts.Banned, tg.lastMessageTo(1))
	assert.Empty(t, tg.messagesTo(2))
}

func TestRelayFailureBreaksPairBothWays(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)
	tg.failFor[2] = true

	require.NoError(t, svc.HandleText(ctx, tgUser(1), "are you there?", 13))

	assert.Nil(t, partnerOf(svc, 1))
	assert.Nil(t, partnerOf(svc, 2))
	assert.True(t, svc.state.InWaiting(1))
	assert.Empty(t, tg.messagesTo(2))
	assert.GreaterOrEqual(t, store.saveCount, 1)

	msgs := tg.messagesTo(1)
	require.Len(t, msgs, 2)
	assert.Equal(t, texts.DeliveryFailed, msgs[0])
	assert.Equal(t, texts.WaitingEmptyQueue, msgs[1])
}

func TestRelayFailureRematchesWithWaitingUser(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)
	enqueueUser(svc, 3, "girl")
	tg.failFor[2] = true

	require.NoError(t, svc.HandleText(ctx, tgUser(1), "hello?", 14))

	require.NotNil(t, partnerOf(svc, 1))
	assert.Equal(t, int64(3), *partnerOf(svc, 1))
	assert.Nil(t, partnerOf(svc, 2))
}
