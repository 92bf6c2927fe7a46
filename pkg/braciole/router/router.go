package router

import "fmt"

// Page is a type-safe identifier for pages.
// Applications should define their own Page constants using iota.
//
// Example:
//
//	const (
//	    PageHome Page = iota
//	    PageChannelGrid
//	    PageSettings
//	)
type Page int

// BindFunc prepares a page for display: typically it rebinds the
// application's GridFocusController with the page's item set and hands the
// input to whatever renders the page. It is called on every entry to the
// page, both forward navigation and back navigation.
type BindFunc func(input any)

// Router manages page navigation with a history stack. It implements the
// default back-requested policy: navigate back in history, else invoke the
// exit hook. Wire Back to a controller's OnBackRequested and Navigate to its
// activation sink.
//
// The exit hook is injected so platform-specific shutdown (closing an app
// window, suspending a device) stays outside the navigation core; the router
// never exits the process itself.
type Router struct {
	pages        map[Page]BindFunc
	stack        *Stack
	exit         func()
	current      Page
	currentInput any
	started      bool
}

// New creates a Router with the given exit hook.
// A nil hook makes Back on an empty history a no-op.
func New(exit func()) *Router {
	return &Router{
		pages: make(map[Page]BindFunc),
		stack: NewStack(),
		exit:  exit,
	}
}

// Register adds a page to the router.
// The bind function is invoked whenever the router enters this page.
func (r *Router) Register(page Page, fn BindFunc) *Router {
	r.pages[page] = fn
	return r
}

// Start enters the first page without recording history.
func (r *Router) Start(page Page, input any) error {
	fn, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("router: page %d not registered", page)
	}

	r.current = page
	r.currentInput = input
	r.started = true
	fn(input)
	return nil
}

// Navigate moves forward to a new page, pushing the current page onto the
// history stack so Back can return to it.
func (r *Router) Navigate(page Page, input any) error {
	fn, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("router: page %d not registered", page)
	}

	if r.started {
		r.stack.Push(r.current, r.currentInput)
	}

	r.current = page
	r.currentInput = input
	r.started = true
	fn(input)
	return nil
}

// Back implements the back-requested policy: pop the most recent history
// entry and rebind its page, or invoke the exit hook when the history is
// empty. Back on a router that was never started also invokes the exit hook.
func (r *Router) Back() {
	entry := r.stack.Pop()
	if entry == nil {
		if r.exit != nil {
			r.exit()
		}
		return
	}

	r.current = entry.Page
	r.currentInput = entry.Input
	if fn, ok := r.pages[entry.Page]; ok {
		fn(entry.Input)
	}
}

// Current returns the page the router last entered.
func (r *Router) Current() Page {
	return r.current
}

// Depth returns the number of history entries Back can pop before the exit
// hook fires.
func (r *Router) Depth() int {
	return r.stack.Len()
}

// Stack returns the underlying navigation stack for advanced use, e.g.
// clearing history after a sign-out.
func (r *Router) Stack() *Stack {
	return r.stack
}
