package braciole

import (
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// RemoteListener reads key events from a Linux input event device
// (remote control, gamepad, front-panel buttons) and delivers decoded
// commands to a handler. Codes absent from the key map are ignored.
//
// Kernel autorepeat events move focus only: directional commands repeat
// while a button is held, activate and back fire once per press.
type RemoteListener struct {
	dev     *evdev.InputDevice
	keyMap  KeyMap
	handler func(constants.Command)

	wg     sync.WaitGroup
	closed atomic.Bool
}

// OpenRemote opens the input device at path and starts delivering commands
// to handler from a background goroutine. The handler is invoked from that
// goroutine; callers that share a controller with other input sources must
// serialize delivery themselves.
//
// A nil keyMap uses DefaultKeyMap.
func OpenRemote(path string, keyMap KeyMap, handler func(constants.Command)) (*RemoteListener, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, NewInputError("open_device", err)
	}

	if keyMap == nil {
		keyMap = DefaultKeyMap()
	}

	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Opened remote input device", "path", path, "name", name)
	}

	l := &RemoteListener{
		dev:     dev,
		keyMap:  keyMap,
		handler: handler,
	}

	l.wg.Add(1)
	go l.loop(path)

	return l, nil
}

func (l *RemoteListener) loop(path string) {
	defer l.wg.Done()

	for {
		ev, err := l.dev.ReadOne()
		if err != nil {
			if !l.closed.Load() {
				internal.GetInternalLogger().Error("Remote input read failed", "path", path, "error", err)
			}
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		cmd, ok := l.keyMap.Decode(uint16(ev.Code))
		if !ok {
			continue
		}

		switch ev.Value {
		case 1: // key down
			l.handler(cmd)
		case 2: // kernel autorepeat
			if cmd.IsDirectional() {
				l.handler(cmd)
			}
		}
	}
}

// Close stops the listener and releases the device.
// Safe to call once; the read goroutine exits before Close returns.
func (l *RemoteListener) Close() error {
	l.closed.Store(true)
	err := l.dev.Close()
	l.wg.Wait()
	return err
}
