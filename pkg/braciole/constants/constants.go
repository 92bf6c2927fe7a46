// Package constants defines shared constants, types, and configuration values
// used throughout the braciole navigation framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Command represents one canonical navigation intent, decoded from raw
// platform input by an input adapter. The set is closed: adapters must map
// every raw code to exactly one Command or ignore it.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	CommandHome
	CommandEnd
	CommandActivate
	CommandBack
)

func (c Command) GetName() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandHome:
		return "Home"
	case CommandEnd:
		return "End"
	case CommandActivate:
		return "Activate"
	case CommandBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsDirectional returns true for commands that move focus and should
// auto-repeat while the underlying button is held.
func (c Command) IsDirectional() bool {
	switch c {
	case CommandLeft, CommandRight, CommandUp, CommandDown:
		return true
	}
	return false
}

// CommandByName resolves a command from its canonical lowercase name.
// Returns CommandNone for unknown names.
func CommandByName(name string) Command {
	switch name {
	case "left":
		return CommandLeft
	case "right":
		return CommandRight
	case "up":
		return CommandUp
	case "down":
		return CommandDown
	case "home":
		return CommandHome
	case "end":
		return CommandEnd
	case "activate", "enter":
		return CommandActivate
	case "back":
		return CommandBack
	default:
		return CommandNone
	}
}

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
)
