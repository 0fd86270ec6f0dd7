package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferentialPolicy(t *testing.T) {
	for _, input := range []string{"orphan", "restrict", "cascade"} {
		policy, err := ParseReferentialPolicy(input)
		require.NoError(t, err)
		assert.Equal(t, ReferentialPolicy(input), policy)
	}

	policy, err := ParseReferentialPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyOrphan, policy)

	_, err = ParseReferentialPolicy("nuke-from-orbit")
	assert.Error(t, err)
}
