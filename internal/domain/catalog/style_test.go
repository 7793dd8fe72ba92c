package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyles_CoverEveryTier(t *testing.T) {
	st := DefaultStyles()
	require.NoError(t, st.Validate())

	for _, tier := range Tiers {
		s, err := st.Lookup(tier)
		require.NoError(t, err)
		assert.NotEmpty(t, s.Gradient)
		assert.NotEmpty(t, s.Button)
	}
}

func TestStyleTable_LookupUnknownTier(t *testing.T) {
	_, err := DefaultStyles().Lookup(Tier("Diamond"))
	assert.ErrorIs(t, err, ErrMissingStyle)
}

func TestStyleTable_DriftIsDetected(t *testing.T) {
	st := DefaultStyles()
	delete(st, TierGold)

	assert.ErrorIs(t, st.Validate(), ErrMissingStyle)

	_, err := st.Lookup(TierGold)
	assert.ErrorIs(t, err, ErrMissingStyle)
}

func TestStyleTable_RejectsExtraTier(t *testing.T) {
	st := DefaultStyles()
	st[Tier("Diamond")] = Style{}

	assert.ErrorIs(t, st.Validate(), ErrUnknownTier)
}
