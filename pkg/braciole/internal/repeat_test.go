package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

func TestCommandRepeaterIgnoresNonDirectional(t *testing.T) {
	r := NewCommandRepeater()

	assert.False(t, r.SetHeld(constants.CommandActivate, true))
	assert.False(t, r.SetHeld(constants.CommandBack, true))
	assert.False(t, r.SetHeld(constants.CommandHome, true))
	assert.False(t, r.IsHeld())
	assert.Equal(t, constants.CommandNone, r.Update())
}

func TestCommandRepeaterHeldPriority(t *testing.T) {
	r := NewCommandRepeater()

	require.True(t, r.SetHeld(constants.CommandRight, true))
	require.True(t, r.SetHeld(constants.CommandUp, true))

	// Up wins when multiple directions are held.
	assert.Equal(t, constants.CommandUp, r.HeldCommand())

	r.SetHeld(constants.CommandUp, false)
	assert.Equal(t, constants.CommandRight, r.HeldCommand())

	r.SetHeld(constants.CommandRight, false)
	assert.False(t, r.IsHeld())
	assert.Equal(t, constants.CommandNone, r.HeldCommand())
}

func TestCommandRepeaterTiming(t *testing.T) {
	// Zero delay and interval makes every Update fire while held.
	r := NewCommandRepeaterWithTiming(0, 0)

	require.True(t, r.SetHeld(constants.CommandDown, true))
	assert.Equal(t, constants.CommandDown, r.Update())
	assert.Equal(t, constants.CommandDown, r.Update())

	r.SetHeld(constants.CommandDown, false)
	assert.Equal(t, constants.CommandNone, r.Update())
}

func TestCommandRepeaterWaitsForDelay(t *testing.T) {
	r := NewCommandRepeaterWithTiming(time.Hour, time.Hour)

	require.True(t, r.SetHeld(constants.CommandLeft, true))

	// Held, but delay has not elapsed yet.
	assert.Equal(t, constants.CommandNone, r.Update())
}

func TestCommandRepeaterReset(t *testing.T) {
	r := NewCommandRepeaterWithTiming(0, 0)

	r.SetHeld(constants.CommandUp, true)
	r.Reset()

	assert.False(t, r.IsHeld())
	assert.Equal(t, constants.CommandNone, r.Update())
}
