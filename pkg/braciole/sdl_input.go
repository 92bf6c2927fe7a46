package braciole

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// SDLInputAdapter decodes SDL keyboard and game controller events into
// canonical commands, for desktop and dev-mode use. Events that do not map
// to a command decode to CommandNone and must not reach a controller.
//
// Directional commands repeat while held. SDL's own keyboard repeat is
// discarded so keyboards and controllers share one repeat timing source.
type SDLInputAdapter struct {
	keyboardMap map[sdl.Keycode]constants.Command
	repeater    internal.CommandRepeater
}

// NewSDLInputAdapter creates an adapter with the default keyboard bindings
// (arrow keys, enter, escape/backspace for back, home, end) and default
// repeat timing.
func NewSDLInputAdapter() *SDLInputAdapter {
	return &SDLInputAdapter{
		keyboardMap: map[sdl.Keycode]constants.Command{
			sdl.K_UP:        constants.CommandUp,
			sdl.K_DOWN:      constants.CommandDown,
			sdl.K_LEFT:      constants.CommandLeft,
			sdl.K_RIGHT:     constants.CommandRight,
			sdl.K_HOME:      constants.CommandHome,
			sdl.K_END:       constants.CommandEnd,
			sdl.K_RETURN:    constants.CommandActivate,
			sdl.K_KP_ENTER:  constants.CommandActivate,
			sdl.K_ESCAPE:    constants.CommandBack,
			sdl.K_BACKSPACE: constants.CommandBack,
		},
		repeater: internal.NewCommandRepeater(),
	}
}

// HandleEvent decodes one SDL event into a command.
// Returns CommandNone for unmapped or non-input events.
func (a *SDLInputAdapter) HandleEvent(event sdl.Event) constants.Command {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		cmd, ok := a.keyboardMap[e.Keysym.Sym]
		if !ok {
			return constants.CommandNone
		}

		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat != 0 {
				// OS repeat; CommandRepeater owns repeat timing.
				return constants.CommandNone
			}
			a.repeater.SetHeld(cmd, true)
			return cmd
		case sdl.KEYUP:
			a.repeater.SetHeld(cmd, false)
		}

	case *sdl.ControllerButtonEvent:
		cmd := commandForControllerButton(e.Button)
		if cmd == constants.CommandNone {
			return constants.CommandNone
		}

		switch e.Type {
		case sdl.CONTROLLERBUTTONDOWN:
			a.repeater.SetHeld(cmd, true)
			return cmd
		case sdl.CONTROLLERBUTTONUP:
			a.repeater.SetHeld(cmd, false)
		}
	}

	return constants.CommandNone
}

// Update fires hold-to-repeat for directional commands.
// Call once per frame; returns CommandNone when no repeat is due.
func (a *SDLInputAdapter) Update() constants.Command {
	return a.repeater.Update()
}

// Reset clears all held state, e.g. when the window loses input focus.
func (a *SDLInputAdapter) Reset() {
	a.repeater.Reset()
}

func commandForControllerButton(button uint8) constants.Command {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.CommandUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.CommandDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.CommandLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.CommandRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.CommandActivate
	case sdl.CONTROLLER_BUTTON_B:
		return constants.CommandBack
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.CommandHome
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.CommandEnd
	default:
		return constants.CommandNone
	}
}
