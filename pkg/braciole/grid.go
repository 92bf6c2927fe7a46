package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// FocusChange describes a focus-changed notification.
// Index is -1 (and Item nil) when no item holds focus, which happens only
// after binding an empty item set.
type FocusChange struct {
	Index     int       // Newly focused index
	PrevIndex int       // Previously focused index, -1 if none
	Item      *GridItem // Newly focused item, nil when Index is -1
}

// GridFocusController tracks which item holds logical focus among an ordered
// collection interpreted as a row-major grid, and moves focus in response to
// decoded navigation commands with wraparound at grid edges.
//
// The controller is pure state: it performs no I/O and never touches
// presentation. Render sinks subscribe with OnFocusChanged, activation sinks
// with OnItemActivated, and the back policy with OnBackRequested. All
// notifications are dispatched synchronously inside the triggering call.
//
// Controllers are not safe for concurrent use. Input adapters deliver one
// command at a time on a single logical thread of control, so there is no
// internal locking.
type GridFocusController struct {
	items   []GridItem
	focused int
	columns int
	active  bool

	onFocusChanged  []func(FocusChange)
	onItemActivated []func(index int, item *GridItem)
	onBackRequested []func()
}

// NewGridFocusController creates an unbound, inactive controller.
// Call Bind to install an item set before navigating.
func NewGridFocusController() *GridFocusController {
	return &GridFocusController{
		focused: -1,
		columns: 1,
	}
}

// OnFocusChanged registers a callback invoked whenever focus moves,
// including the initial focus set by Bind.
func (c *GridFocusController) OnFocusChanged(fn func(FocusChange)) {
	c.onFocusChanged = append(c.onFocusChanged, fn)
}

// OnItemActivated registers a callback invoked when the focused item is
// activated. The callback performs the real action associated with the item;
// the controller never performs it itself.
func (c *GridFocusController) OnItemActivated(fn func(index int, item *GridItem)) {
	c.onItemActivated = append(c.onItemActivated, fn)
}

// OnBackRequested registers a callback invoked on every back command.
func (c *GridFocusController) OnBackRequested(fn func()) {
	c.onBackRequested = append(c.onBackRequested, fn)
}

// Bind replaces the item collection and row width. Focus moves to index 0
// and the controller becomes active when items is non-empty; binding an
// empty set leaves the controller inactive with no focused item. Bind always
// emits a focus-changed notification naming the newly focused item, or none.
//
// A column count below 1 is clamped to 1 rather than rejected: the row width
// is a presentation parameter, not a correctness-critical one.
func (c *GridFocusController) Bind(items []GridItem, columns int) {
	if columns < 1 {
		internal.GetInternalLogger().Warn("Invalid grid column count; clamping to 1", "columns", columns)
		columns = 1
	}

	prev := c.focused
	c.items = items
	c.columns = columns

	if len(items) == 0 {
		c.active = false
		c.focused = -1
	} else {
		c.active = true
		c.focused = 0
	}

	c.notifyFocus(prev)
}

// MoveFocus moves focus one step in the given direction, wrapping at the
// grid edges. Horizontal movement wraps within the current row; vertical
// movement wraps to the same column in the opposite row, clamped when the
// ragged last row lacks that column. Home and end jump to the first and last
// item.
//
// Calling MoveFocus while unbound or inactive is a no-op with no
// notification. A non-movement command is likewise ignored.
//
// MoveFocus always emits focus-changed, even when the computed index equals
// the prior one (a single-item grid wraps onto itself). Sinks that replay a
// scroll or transition animation per notification rely on this.
func (c *GridFocusController) MoveFocus(direction constants.Command) {
	if !c.active || len(c.items) == 0 {
		return
	}

	lastIndex := len(c.items) - 1
	rowStart := (c.focused / c.columns) * c.columns
	rowEnd := rowStart + c.columns - 1
	if rowEnd > lastIndex {
		rowEnd = lastIndex
	}

	prev := c.focused

	switch direction {
	case constants.CommandLeft:
		if c.focused%c.columns != 0 {
			c.focused--
		} else {
			c.focused = rowEnd
		}

	case constants.CommandRight:
		if (c.focused+1)%c.columns != 0 && c.focused < lastIndex {
			c.focused++
		} else {
			c.focused = rowStart
		}

	case constants.CommandUp:
		if c.focused-c.columns >= 0 {
			c.focused -= c.columns
		} else {
			// Wrap to the same column in the last row. The last row may be
			// ragged and lack this column, so clamp to the final item.
			col := c.focused % c.columns
			target := (lastIndex/c.columns)*c.columns + col
			if target > lastIndex {
				target = lastIndex
			}
			c.focused = target
		}

	case constants.CommandDown:
		if c.focused+c.columns <= lastIndex {
			c.focused += c.columns
		} else {
			// Wrap to the same column in the first row.
			c.focused = c.focused % c.columns
		}

	case constants.CommandHome:
		c.focused = 0

	case constants.CommandEnd:
		c.focused = lastIndex

	default:
		return
	}

	c.notifyFocus(prev)
}

// Activate emits an item-activated notification naming the focused item.
// Focus does not move. No-op while unbound or inactive.
func (c *GridFocusController) Activate() {
	if !c.active || c.focused < 0 || c.focused >= len(c.items) {
		return
	}

	item := &c.items[c.focused]
	for _, fn := range c.onItemActivated {
		fn(c.focused, item)
	}
}

// HandleBack emits a back-requested notification. Unlike every other
// operation this fires even while inactive: back must keep working when
// navigation is disabled, e.g. behind a modal. Focus state is untouched.
func (c *GridFocusController) HandleBack() {
	for _, fn := range c.onBackRequested {
		fn()
	}
}

// HandleCommand dispatches one decoded command to the matching operation.
// This is the surface input adapters call. CommandNone is ignored.
func (c *GridFocusController) HandleCommand(cmd constants.Command) {
	switch cmd {
	case constants.CommandActivate:
		c.Activate()
	case constants.CommandBack:
		c.HandleBack()
	case constants.CommandNone:
	default:
		c.MoveFocus(cmd)
	}
}

// SetActive enables or disables navigation and activation without touching
// the bound items or focus index. Activating an unbound controller is a
// no-op. Safe to call repeatedly.
func (c *GridFocusController) SetActive(active bool) {
	if active && len(c.items) == 0 {
		return
	}
	c.active = active
}

// Active reports whether navigation commands are currently applied.
func (c *GridFocusController) Active() bool {
	return c.active
}

// FocusedIndex returns the index of the focused item, or -1 when no item
// holds focus.
func (c *GridFocusController) FocusedIndex() int {
	return c.focused
}

// FocusedItem returns the focused item, or nil when no item holds focus.
func (c *GridFocusController) FocusedItem() *GridItem {
	if c.focused < 0 || c.focused >= len(c.items) {
		return nil
	}
	return &c.items[c.focused]
}

// Columns returns the row width used to interpret the items as a grid.
func (c *GridFocusController) Columns() int {
	return c.columns
}

// Len returns the number of bound items.
func (c *GridFocusController) Len() int {
	return len(c.items)
}

// Items returns the bound item collection. Render sinks read it for labels.
// Callers must not mutate it; rebinding is the only supported way to change
// the collection.
func (c *GridFocusController) Items() []GridItem {
	return c.items
}

func (c *GridFocusController) notifyFocus(prevIndex int) {
	change := FocusChange{
		Index:     c.focused,
		PrevIndex: prevIndex,
	}
	if c.focused >= 0 && c.focused < len(c.items) {
		change.Item = &c.items[c.focused]
	}

	for _, fn := range c.onFocusChanged {
		fn(change)
	}
}
