package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameVersion(t *testing.T) {
	retail, err := ParseGameVersion("retail")
	require.NoError(t, err)
	assert.Equal(t, GameVersionRetail, retail)

	classic, err := ParseGameVersion("classic")
	require.NoError(t, err)
	assert.Equal(t, GameVersionClassic, classic)
}

func TestParseGameVersionDefaultsToRetail(t *testing.T) {
	version, err := ParseGameVersion("")
	require.NoError(t, err)
	assert.Equal(t, GameVersionRetail, version)
}

func TestParseGameVersionRejectsUnknownValues(t *testing.T) {
	for _, input := range []string{"era", "Retail", "CLASSIC", "wrath", "retail "} {
		_, err := ParseGameVersion(input)
		assert.Error(t, err, "input %q", input)
	}
}
