package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

func TestGetOrCreateProfile(t *testing.T) {
	s := New()

	p := s.GetOrCreateProfile(1)
	require.NotNil(t, p)
	assert.Equal(t, domain.GenderUnknown, p.Gender)
	assert.Empty(t, p.Interests)

	p.Gender = domain.GenderGirl
	assert.Same(t, p, s.GetOrCreateProfile(1))
	assert.Equal(t, 1, s.ProfileCount())
}

func TestEnqueueWaitingDeduplicates(t *testing.T) {
	s := New()

	s.EnqueueWaiting(1)
	s.EnqueueWaiting(2)
	s.EnqueueWaiting(1)

	assert.Equal(t, []int64{2, 1}, s.Waiting())
}

func TestRemoveWaitingIdempotent(t *testing.T) {
	s := New()
	s.EnqueueWaiting(1)

	assert.True(t, s.RemoveWaiting(1))
	assert.False(t, s.RemoveWaiting(1))
	assert.Equal(t, 0, s.WaitingLen())
}

func TestBanUnbanIdempotent(t *testing.T) {
	s := New()

	s.Ban(5)
	s.Ban(5)
	assert.True(t, s.IsBanned(5))
	assert.Equal(t, 1, s.BannedCount())

	s.Unban(5)
	s.Unban(5)
	assert.False(t, s.IsBanned(5))
	assert.Equal(t, 0, s.BannedCount())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New()
	p := s.GetOrCreateProfile(1)
	p.Gender = domain.GenderGirl
	p.Interests = []string{"music"}
	s.EnqueueWaiting(1)
	s.Ban(9)

	snap := s.Snapshot()

	// мутации снапшота не должны трогать живое состояние
	snap.Users["1"].Interests[0] = "changed"
	snap.Waiting[0] = 99
	snap.Banned[0] = 99

	assert.Equal(t, "music", s.GetOrCreateProfile(1).Interests[0])
	assert.Equal(t, []int64{1}, s.Waiting())
	assert.True(t, s.IsBanned(9))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := New()
	girl := s.GetOrCreateProfile(1)
	girl.Gender = domain.GenderGirl
	girl.Interests = []string{"movies", "music"}
	partnerID := int64(2)
	girl.PartnerID = &partnerID
	boy := s.GetOrCreateProfile(2)
	boy.Gender = domain.GenderBoy
	one := int64(1)
	boy.PartnerID = &one
	s.EnqueueWaiting(3)
	s.GetOrCreateProfile(3)
	s.Ban(9)

	restored := New()
	restored.Restore(s.Snapshot())

	assert.Equal(t, 3, restored.ProfileCount())
	p, ok := restored.Profile(1)
	require.True(t, ok)
	assert.Equal(t, domain.GenderGirl, p.Gender)
	require.NotNil(t, p.PartnerID)
	assert.Equal(t, int64(2), *p.PartnerID)
	assert.Equal(t, []int64{3}, restored.Waiting())
	assert.True(t, restored.IsBanned(9))
}

func TestRestoreClearsOneSidedPairs(t *testing.T) {
	two := int64(2)
	three := int64(3)
	four := int64(4)
	ninety := int64(90)

	snap := domain.NewSnapshot()
	// 1 указывает на 2, но 2 свободен
	snap.Users["1"] = &domain.Profile{Interests: []string{}, PartnerID: &two}
	snap.Users["2"] = &domain.Profile{Interests: []string{}}
	// 3 и 4 ссылаются друг на друга - валидная пара
	snap.Users["3"] = &domain.Profile{Interests: []string{}, PartnerID: &four}
	snap.Users["4"] = &domain.Profile{Interests: []string{}, PartnerID: &three}
	// 5 замкнут сам на себя, 6 указывает на несуществующую анкету
	five := int64(5)
	snap.Users["5"] = &domain.Profile{Interests: []string{}, PartnerID: &five}
	snap.Users["6"] = &domain.Profile{Interests: []string{}, PartnerID: &ninety}
	snap.Waiting = []int64{1}

	s := New()
	s.Restore(snap)

	p1, _ := s.Profile(1)
	assert.Nil(t, p1.PartnerID)
	p3, _ := s.Profile(3)
	require.NotNil(t, p3.PartnerID)
	assert.Equal(t, int64(4), *p3.PartnerID)
	p5, _ := s.Profile(5)
	assert.Nil(t, p5.PartnerID)
	p6, _ := s.Profile(6)
	assert.Nil(t, p6.PartnerID)

	// после зачистки ложной пары 1 остаётся в очереди
	assert.Equal(t, []int64{1}, s.Waiting())
}

func TestRestoreSanitizesWaiting(t *testing.T) {
	snap := domain.NewSnapshot()
	partnerID := int64(4)
	snap.Users["3"] = &domain.Profile{Gender: domain.GenderBoy, Interests: []string{}, PartnerID: &partnerID}
	snap.Users["broken"] = &domain.Profile{Gender: "dragon"}
	snap.Users["5"] = &domain.Profile{Gender: "dragon"}
	snap.Waiting = []int64{1, 1, 2, 3, 5}
	snap.Banned = []int64{2}

	s := New()
	s.Restore(snap)

	// дубль, забаненный и занятый в паре отброшены, битый ключ пропущен
	assert.Equal(t, []int64{1, 5}, s.Waiting())
	_, ok := s.Profile(5)
	require.True(t, ok)
	p, _ := s.Profile(5)
	assert.Equal(t, domain.GenderUnknown, p.Gender)
	assert.NotNil(t, p.Interests)
}
