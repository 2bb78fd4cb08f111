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

func TestStartQueuesFirstUser(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleStart(ctx, tgUser(1)))

	assert.True(t, svc.state.InWaiting(1))
	msgs := tg.messagesTo(1)
	require.Len(t, msgs, 2)
	assert.Equal(t, texts.Welcome, msgs[0])
	assert.Equal(t, texts.WaitingEmptyQueue, msgs[1])
	assert.Equal(t, 1, store.saveCount)
}

func TestStartPairsBestSharedInterests(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy, "art")
	enqueueUser(svc, 2, domain.GenderGirl, "art", "books", "chess")
	enqueueUser(svc, 3, domain.GenderBoy, "art", "books")

	requester := svc.state.GetOrCreateProfile(4)
	requester.Interests = []string{"art", "books", "chess"}

	require.NoError(t, svc.matchAndNotify(ctx, 4))

	require.NotNil(t, partnerOf(svc, 4))
	assert.Equal(t, int64(2), *partnerOf(svc, 4))
	assert.Equal(t, int64(4), *partnerOf(svc, 2))
	assert.False(t, svc.state.InWaiting(2))
	assert.True(t, svc.state.InWaiting(1))
	assert.True(t, svc.state.InWaiting(3))

	// оба участника получают уведомление с общими интересами
	assert.Contains(t, tg.lastMessageTo(4), "girl")
	assert.Contains(t, tg.lastMessageTo(4), "art, books, chess")
	assert.Contains(t, tg.lastMessageTo(2), "art, books, chess")
}

func TestPairedNotificationFallsBackToPartnerInterests(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderGirl, "books", "hiking")

	require.NoError(t, svc.matchAndNotify(ctx, 2))

	// общих интересов нет: каждому показываются интересы собеседника
	assert.Contains(t, tg.lastMessageTo(2), "books, hiking")
	assert.NotContains(t, tg.lastMessageTo(2), "Shared interests")
	assert.Contains(t, tg.lastMessageTo(1), "did not set any interests")
}

func TestStartTieFavorsQueueOrder(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy, "music")
	enqueueUser(svc, 2, domain.GenderGirl, "music")

	requester := svc.state.GetOrCreateProfile(3)
	requester.Interests = []string{"music"}

	require.NoError(t, svc.matchAndNotify(ctx, 3))

	require.NotNil(t, partnerOf(svc, 3))
	assert.Equal(t, int64(1), *partnerOf(svc, 3))
}

func TestStartWithoutInterestsPairsQueueHead(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy)
	enqueueUser(svc, 2, domain.GenderGirl)

	require.NoError(t, svc.matchAndNotify(ctx, 3))

	require.NotNil(t, partnerOf(svc, 3))
	assert.Equal(t, int64(1), *partnerOf(svc, 3))
}

func TestGirlsOnlyFilterSkipsNonGirls(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy, "music")
	enqueueUser(svc, 2, domain.GenderOther, "music")
	enqueueUser(svc, 3, domain.GenderGirl)

	requester := svc.state.GetOrCreateProfile(4)
	requester.Interests = []string{"music"}
	domain.GrantPremium(requester, time.Now(), time.Hour)

	require.NoError(t, svc.matchAndNotify(ctx, 4))

	// девушка без общих интересов побеждает всех с общими
	require.NotNil(t, partnerOf(svc, 4))
	assert.Equal(t, int64(3), *partnerOf(svc, 4))
}

func TestGirlsOnlyFilterIsDirectional(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	// у кандидата в очереди активен girls-only, но инициатора-парня это не останавливает
	enqueueUser(svc, 1, domain.GenderBoy)
	domain.GrantPremium(svc.state.GetOrCreateProfile(1), time.Now(), time.Hour)

	svc.state.GetOrCreateProfile(2).Gender = domain.GenderBoy

	require.NoError(t, svc.matchAndNotify(ctx, 2))

	require.NotNil(t, partnerOf(svc, 2))
	assert.Equal(t, int64(1), *partnerOf(svc, 2))
}

func TestGirlsOnlyNoCandidateQueuesUser(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy)
	enqueueUser(svc, 2, domain.GenderBoy)

	requester := svc.state.GetOrCreateProfile(3)
	domain.GrantPremium(requester, time.Now(), time.Hour)

	require.NoError(t, svc.matchAndNotify(ctx, 3))

	assert.Nil(t, partnerOf(svc, 3))
	assert.True(t, svc.state.InWaiting(3))
	assert.True(t, svc.state.InWaiting(1))
	assert.True(t, svc.state.InWaiting(2))
	assert.Equal(t, texts.WaitingNoCandidate, tg.lastMessageTo(3))
}

func TestExpiredPremiumDoesNotFilter(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderBoy)

	requester := svc.state.GetOrCreateProfile(2)
	requester.PremiumGirlsUntil = time.Now().Add(-time.Minute).UnixMilli()

	require.NoError(t, svc.matchAndNotify(ctx, 2))

	require.NotNil(t, partnerOf(svc, 2))
	assert.Equal(t, int64(1), *partnerOf(svc, 2))
}

func TestStartWhileBanned(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	svc.state.Ban(1)

	require.NoError(t, svc.matchAndNotify(ctx, 1))

	assert.False(t, svc.state.InWaiting(1))
	assert.Equal(t, texts.Banned, tg.lastMessageTo(1))
}

func TestStartWhilePaired(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)

	require.NoError(t, svc.matchAndNotify(ctx, 1))

	assert.Equal(t, int64(2), *partnerOf(svc, 1))
	assert.Equal(t, texts.AlreadyChatting, tg.lastMessageTo(1))
}

func TestRepeatedStartDoesNotDuplicateQueue(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.matchAndNotify(ctx, 1))
	require.NoError(t, svc.matchAndNotify(ctx, 1))

	assert.Equal(t, []int64{1}, svc.state.Waiting())
}

func TestNextBreaksPairAndSearches(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)

	require.NoError(t, svc.HandleNext(ctx, tgUser(1)))

	assert.Nil(t, partnerOf(svc, 1))
	assert.Nil(t, partnerOf(svc, 2))
	assert.True(t, svc.state.InWaiting(1))
	assert.Equal(t, texts.PartnerLeft, tg.lastMessageTo(2))

	msgs := tg.messagesTo(1)
	require.Len(t, msgs, 2)
	assert.Equal(t, texts.NextSearching, msgs[0])
	assert.Equal(t, texts.WaitingEmptyQueue, msgs[1])
}

func TestStopEndsChatWithoutSearching(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	pairUsers(svc, 1, 2)

	require.NoError(t, svc.HandleStop(ctx, tgUser(1)))

	assert.Nil(t, partnerOf(svc, 1))
	assert.Nil(t, partnerOf(svc, 2))
	assert.False(t, svc.state.InWaiting(1))
	assert.Equal(t, texts.Stopped, tg.lastMessageTo(1))
	assert.Equal(t, texts.PartnerLeft, tg.lastMessageTo(2))
}

func TestStopRemovesFromQueue(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	enqueueUser(svc, 1, domain.GenderUnknown)

	require.NoError(t, svc.HandleStop(ctx, tgUser(1)))

	assert.False(t, svc.state.InWaiting(1))
	assert.Equal(t, texts.Stopped, tg.lastMessageTo(1))
}
