// Package router provides page navigation with a history stack and the
// default back-requested policy: navigate back in history, else exit.
//
// The router is event-driven: navigation happens when the application calls
// Navigate (typically from an item-activated sink) or Back (typically from a
// back-requested sink). Each page has a bind function that reinstalls the
// page's state, usually by rebinding a GridFocusController with the page's
// items, on every entry, forward or backward.
//
// # Basic Usage
//
//	// Define page identifiers as typed constants
//	const (
//	    PageChannels Page = iota
//	    PageChannelDetail
//	)
//
//	r := router.New(func() {
//	    // platform-exit hook: close the window, suspend, etc.
//	    quit <- struct{}{}
//	})
//
//	r.Register(PageChannels, func(input any) {
//	    controller.Bind(channelItems, 4)
//	})
//
//	r.Register(PageChannelDetail, func(input any) {
//	    ch := input.(Channel)
//	    controller.Bind(detailItems(ch), 1)
//	})
//
//	controller.OnItemActivated(func(index int, item *braciole.GridItem) {
//	    r.Navigate(PageChannelDetail, item.Metadata.(Channel))
//	})
//
//	controller.OnBackRequested(r.Back)
//
//	r.Start(PageChannels, nil)
//
// # Exit Hook
//
// Back on an empty history invokes the exit hook passed to New. The hook is
// the only place platform-specific exit behavior lives; the router never
// calls os.Exit.
package router
