package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"girl":   GenderGirl,
		"g":      GenderGirl,
		"female": GenderGirl,
		"F":      GenderGirl,
		"boy":    GenderBoy,
		"Male":   GenderBoy,
		"m":      GenderBoy,
		"other":  GenderOther,
		"any":    GenderOther,
		" girl ": GenderGirl,
	}

	for input, want := range cases {
		got, ok := ParseGender(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, input := range []string{"", "dragon", "girls boys"} {
		_, ok := ParseGender(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestNormalizeInterests(t *testing.T) {
	interests := NormalizeInterests("Music, movies,MUSIC\n hiking   books,")

	assert.Equal(t, []string{"books", "hiking", "movies", "music"}, interests)
}

func TestNormalizeInterestsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeInterests("  ,,, \n "))
}

func TestSharedInterests(t *testing.T) {
	a := NewProfile()
	a.Interests = []string{"books", "movies", "music"}
	b := NewProfile()
	b.Interests = []string{"hiking", "movies", "music"}

	assert.Equal(t, []string{"movies", "music"}, a.SharedInterests(b))
	assert.Empty(t, NewProfile().SharedInterests(b))
}

func TestProfileClone(t *testing.T) {
	partnerID := int64(42)
	original := NewProfile()
	original.Gender = GenderGirl
	original.Interests = []string{"music"}
	original.PartnerID = &partnerID

	clone := original.Clone()
	clone.Interests[0] = "changed"
	*clone.PartnerID = 7

	assert.Equal(t, "music", original.Interests[0])
	assert.Equal(t, int64(42), *original.PartnerID)
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "girl", GenderGirl.Label())
	assert.Equal(t, "boy", GenderBoy.Label())
	assert.Equal(t, "person", GenderOther.Label())
	assert.Equal(t, "person", GenderUnknown.Label())
}
