package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTone_Known(t *testing.T) {
	tone, preset, err := LookupTone("humorous")
	require.NoError(t, err)
	assert.Equal(t, ToneHumorous, tone)
	assert.Equal(t, "Humorous", preset.Name)
	assert.NotEmpty(t, preset.Style)
}

func TestLookupTone_EmptyDefaultsToCasual(t *testing.T) {
	tone, preset, err := LookupTone("")
	require.NoError(t, err)
	assert.Equal(t, ToneCasual, tone)
	assert.Equal(t, "Casual", preset.Name)
}

func TestLookupTone_Unknown(t *testing.T) {
	_, _, err := LookupTone("sarcastic")
	assert.ErrorIs(t, err, ErrInvalidTone)
}

func TestLookupNiche_Known(t *testing.T) {
	niche, preset, err := LookupNiche("tech")
	require.NoError(t, err)
	assert.Equal(t, NicheTech, niche)
	assert.Contains(t, preset.Topics, "coding")
}

func TestLookupNiche_Unknown(t *testing.T) {
	_, _, err := LookupNiche("underwater-basket-weaving")
	assert.ErrorIs(t, err, ErrInvalidNiche)
}

func TestTones_CopyIsIsolated(t *testing.T) {
	first := Tones()
	first[ToneCasual] = TonePreset{Name: "mutated"}

	_, preset, err := LookupTone("casual")
	require.NoError(t, err)
	assert.Equal(t, "Casual", preset.Name)
}

func TestNiches_ContainsAllKeys(t *testing.T) {
	all := Niches()
	assert.Len(t, all, 6)
	for _, key := range []Niche{NicheTech, NicheBusiness, NichePersonalGrowth, NicheCreatorEconomy, NicheFinance, NicheHealthWellness} {
		assert.Contains(t, all, key)
	}
}
