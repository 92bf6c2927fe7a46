package braciole

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

// KeyMap maps a platform-specific key code space to the closed command set.
// Codes absent from the map decode to nothing and must be ignored by input
// adapters, never delivered to a controller.
type KeyMap map[uint16]constants.Command

// keyMapFile is the TOML schema for custom key mappings:
//
//	[keys]
//	left = [105]
//	right = [106]
//	activate = [28, 96]
//	back = [158]
type keyMapFile struct {
	Keys map[string][]uint16 `toml:"keys"`
}

// LoadKeyMap parses a TOML key mapping. Command names are the canonical
// lowercase names (left, right, up, down, home, end, activate, back);
// unknown names are an error rather than silently dropped.
func LoadKeyMap(data []byte) (KeyMap, error) {
	var file keyMapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap: parse: %w", err)
	}

	m := make(KeyMap)
	for name, codes := range file.Keys {
		cmd := constants.CommandByName(name)
		if cmd == constants.CommandNone {
			return nil, fmt.Errorf("keymap: unknown command %q", name)
		}
		for _, code := range codes {
			m[code] = cmd
		}
	}
	return m, nil
}

// LoadKeyMapFile reads and parses a TOML key mapping file.
func LoadKeyMapFile(path string) (KeyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: read %s: %w", path, err)
	}
	return LoadKeyMap(data)
}

// DefaultKeyMap returns the mapping for Linux input event key codes as
// produced by remote controls and keyboards on embedded devices.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		103: constants.CommandUp,       // KEY_UP
		108: constants.CommandDown,     // KEY_DOWN
		105: constants.CommandLeft,     // KEY_LEFT
		106: constants.CommandRight,    // KEY_RIGHT
		102: constants.CommandHome,     // KEY_HOME
		107: constants.CommandEnd,      // KEY_END
		28:  constants.CommandActivate, // KEY_ENTER
		96:  constants.CommandActivate, // KEY_KPENTER
		352: constants.CommandActivate, // KEY_OK (remote controls)
		158: constants.CommandBack,     // KEY_BACK
		1:   constants.CommandBack,     // KEY_ESC
	}
}

// Decode resolves a raw key code to a command.
// The second return value is false for unmapped codes.
func (m KeyMap) Decode(code uint16) (constants.Command, bool) {
	cmd, ok := m[code]
	return cmd, ok
}
