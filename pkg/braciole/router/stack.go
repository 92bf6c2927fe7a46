package router

// StackEntry is a single entry in the navigation history.
// It stores the page identifier and the input the page was bound with, so
// back navigation can rebind the page exactly as it was.
type StackEntry struct {
	Page  Page
	Input any
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry. Called when navigating forward to a new page.
func (s *Stack) Push(page Page, input any) {
	s.entries = append(s.entries, StackEntry{
		Page:  page,
		Input: input,
	})
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
