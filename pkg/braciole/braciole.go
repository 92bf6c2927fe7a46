// Package braciole provides directional focus navigation for grid-arranged
// UIs driven by remote-control-style input, targeting embedded Linux devices
// such as TVs and handheld consoles.
//
// The package centers on GridFocusController, a pure navigation state
// machine with no I/O of its own. Input adapters (evdev remotes, SDL
// keyboards and game controllers) decode raw events into canonical commands
// and feed them to the controller; render and activation sinks subscribe to
// its notifications. The router subpackage supplies the default
// back-navigation policy, and filterlist hosts the content-filter
// collaborator used by browser-style applications built on this framework.
package braciole

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// DebugEnvVar enables internal debug logging when set to any value.
const DebugEnvVar = "BRACIOLE_DEBUG"

// Options configures framework initialization.
type Options struct {
	LogPath              string // Full path for the log file including filename (creates parent directories)
	LogLevel             string // Minimum application log level ("debug", "info", "warn", "error")
	KeyMapFile           string // Path to a TOML key mapping file overriding the built-in defaults
	PrimaryThemeColorHex uint32 // Custom highlight color for render sinks
}

var activeKeyMap = DefaultKeyMap()

// Init configures logging, theming, and the active key mapping.
// Call before opening input sources or creating painters.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.PrimaryThemeColorHex != 0 {
		theme := internal.GetTheme()
		theme.HighlightColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if options.KeyMapFile != "" {
		m, err := LoadKeyMapFile(options.KeyMapFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load key mapping; using defaults", "file", options.KeyMapFile, "error", err)
		} else {
			activeKeyMap = m
		}
	}
}

// Close flushes and releases framework resources.
// Call before program exit.
func Close() {
	internal.CloseLogger()
}

// SetKeyMapBytes loads a custom key mapping from TOML bytes, replacing the
// active mapping used by newly opened input sources.
func SetKeyMapBytes(data []byte) error {
	m, err := LoadKeyMap(data)
	if err != nil {
		return err
	}
	activeKeyMap = m
	return nil
}

// ActiveKeyMap returns the mapping installed by Init or SetKeyMapBytes.
func ActiveKeyMap() KeyMap {
	return activeKeyMap
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}
