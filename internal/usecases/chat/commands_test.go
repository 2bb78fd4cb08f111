package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

func TestGenderCommand(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "gender", "girl", 1))

	assert.Equal(t, domain.GenderGirl, svc.state.GetOrCreateProfile(1).Gender)
	assert.Equal(t, texts.FormatGenderSet(domain.GenderGirl), tg.lastMessageTo(1))
	assert.Equal(t, 1, store.saveCount)
}

func TestGenderCommandUsage(t *testing.T) {
	svc, tg, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "gender", "dragon", 2))

	assert.Equal(t, texts.GenderUsage, tg.lastMessageTo(1))
	assert.Equal(t, domain.GenderUnknown, svc.state.GetOrCreateProfile(1).Gender)
	assert.Equal(t, 0, store.saveCount)
}

func TestInterestsCommandNormalizes(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "interests", "Music, MOVIES music", 3))

	assert.Equal(t, []string{"movies", "music"}, svc.state.GetOrCreateProfile(1).Interests)
	assert.Equal(t, texts.FormatInterestsSet([]string{"movies", "music"}), tg.lastMessageTo(1))
}

func TestInterestsCommandUsage(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	svc.state.GetOrCreateProfile(1).Interests = []string{"music"}

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "interests", "  ", 4))

	assert.Equal(t, texts.InterestsUsage, tg.lastMessageTo(1))
	assert.Equal(t, []string{"music"}, svc.state.GetOrCreateProfile(1).Interests)
}

func TestProfileCommand(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	p := svc.state.GetOrCreateProfile(1)
	p.Gender = domain.GenderBoy
	p.Interests = []string{"chess", "music"}

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "profile", "", 5))

	card := tg.lastMessageTo(1)
	assert.Contains(t, card, "Gender: boy")
	assert.Contains(t, card, "chess, music")
	assert.Contains(t, card, "inactive")
}

func TestHelpCommand(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "help", "", 6))

	assert.Equal(t, texts.Help, tg.lastMessageTo(1))
}

func TestUnknownCommand(t *testing.T) {
	svc, tg, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleCommand(ctx, tgUser(1), "dance", "", 7))

	assert.Equal(t, texts.FormatUnknownCommand("dance"), tg.lastMessageTo(1))
}
