package braciole

// GridItem represents a single focusable entity in a grid.
// The controller treats items as opaque handles: it never inspects Text or
// Metadata, it only reports which item holds focus or was activated.
type GridItem struct {
	Text     string      // Display label, used only by render sinks
	Metadata interface{} // Application-specific data attached to the item
}
