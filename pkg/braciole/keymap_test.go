package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

func TestLoadKeyMap(t *testing.T) {
	data := []byte(`
[keys]
left = [105]
right = [106]
activate = [28, 96]
back = [158]
`)

	m, err := LoadKeyMap(data)
	require.NoError(t, err)

	cmd, ok := m.Decode(105)
	assert.True(t, ok)
	assert.Equal(t, constants.CommandLeft, cmd)

	// Multiple codes may map to the same command.
	for _, code := range []uint16{28, 96} {
		cmd, ok = m.Decode(code)
		assert.True(t, ok)
		assert.Equal(t, constants.CommandActivate, cmd)
	}

	// Unmapped codes decode to nothing.
	_, ok = m.Decode(999)
	assert.False(t, ok)
}

func TestLoadKeyMapRejectsUnknownCommand(t *testing.T) {
	_, err := LoadKeyMap([]byte("[keys]\nwarp = [42]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp")
}

func TestLoadKeyMapRejectsBadTOML(t *testing.T) {
	_, err := LoadKeyMap([]byte("[keys\nleft = "))
	assert.Error(t, err)
}

func TestDefaultKeyMapCoversAllCommands(t *testing.T) {
	m := DefaultKeyMap()

	seen := map[constants.Command]bool{}
	for _, cmd := range m {
		seen[cmd] = true
	}

	for _, cmd := range []constants.Command{
		constants.CommandLeft, constants.CommandRight,
		constants.CommandUp, constants.CommandDown,
		constants.CommandHome, constants.CommandEnd,
		constants.CommandActivate, constants.CommandBack,
	} {
		assert.True(t, seen[cmd], "default map missing %s", cmd.GetName())
	}
}
