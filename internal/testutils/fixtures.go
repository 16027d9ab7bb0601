package testutils

import (
	"testing"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/gamedata"
	"github.com/stretchr/testify/require"
)

// LoadBalance returns the compiled-in game data
func LoadBalance(t *testing.T) *gamedata.Data {
	t.Helper()
	data, err := gamedata.Default()
	require.NoError(t, err)
	return data
}

// CreateTestProfile builds a default profile, with the class applied when one is given
func CreateTestProfile(t *testing.T, data *gamedata.Data, ref character.Ref, class character.ClassID) *character.Profile {
	t.Helper()
	p := character.NewProfile(ref, data.BaseStats)
	if class == "" {
		return p
	}

	archetype, ok := data.Classes.Get(class)
	require.True(t, ok, "unknown class %s", class)
	p.Class = class
	p.ApplyStats(archetype.Derive(data.BaseStats))
	return p
}
