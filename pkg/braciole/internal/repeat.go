// Package internal contains the infrastructure for the braciole navigation
// framework: logging, input repeat timing, grid geometry, and rendering
// utilities. Types and functions in this package are not part of the public API.
package internal

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

// CommandRepeater tracks held directional commands and handles repeat timing.
// Embed this in input adapters to get consistent hold-to-repeat behavior for
// the four movement commands. Home, end, activate, and back never repeat.
type CommandRepeater struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewCommandRepeater creates a CommandRepeater with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewCommandRepeater() CommandRepeater {
	return CommandRepeater{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

// NewCommandRepeaterWithTiming creates a CommandRepeater with custom timing.
func NewCommandRepeaterWithTiming(delay, interval time.Duration) CommandRepeater {
	return CommandRepeater{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a directional command.
// Returns true if the command was directional, false otherwise.
func (r *CommandRepeater) SetHeld(cmd constants.Command, held bool) bool {
	switch cmd {
	case constants.CommandUp:
		r.held.up = held
	case constants.CommandDown:
		r.held.down = held
	case constants.CommandLeft:
		r.held.left = held
	case constants.CommandRight:
		r.held.right = held
	default:
		return false
	}
	if !held {
		r.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any directional command is currently held.
func (r *CommandRepeater) IsHeld() bool {
	return r.held.up || r.held.down || r.held.left || r.held.right
}

// HeldCommand returns the currently held directional command.
// If multiple are held, priority is: up, down, left, right.
// Returns CommandNone if nothing is held.
func (r *CommandRepeater) HeldCommand() constants.Command {
	if r.held.up {
		return constants.CommandUp
	}
	if r.held.down {
		return constants.CommandDown
	}
	if r.held.left {
		return constants.CommandLeft
	}
	if r.held.right {
		return constants.CommandRight
	}
	return constants.CommandNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the command that should be processed,
// or CommandNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (r *CommandRepeater) Update() constants.Command {
	if !r.IsHeld() {
		r.lastRepeatTime = time.Now()
		r.hasRepeated = false
		return constants.CommandNone
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if time.Since(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = time.Now()
		r.hasRepeated = true
		return r.HeldCommand()
	}

	return constants.CommandNone
}

// Reset clears all held commands and timing state.
func (r *CommandRepeater) Reset() {
	r.held.up = false
	r.held.down = false
	r.held.left = false
	r.held.right = false
	r.hasRepeated = false
	r.lastRepeatTime = time.Now()
}
