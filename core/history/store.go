// Package history holds previously entered command lines in a fixed-size
// ring and tracks the position of an in-progress arrow key navigation.
package history

import "strings"

const (
	// DefaultSize is the number of entries kept when no size is configured.
	DefaultSize = 100

	// notNavigating is the navigation index when the user isn't browsing.
	notNavigating = -1
)

// Store is a bounded circular buffer of submitted lines.
//
// The zero value is not usable, create one with New.
type Store struct {
	entries []string
	// head is the next slot to be written.
	head int
	// count is the number of valid entries, it saturates at len(entries).
	count int
	// index is the offset back from the most recent entry while navigating,
	// or notNavigating.
	index int
}

// New creates an empty store that holds at most capacity entries.
func New(capacity int) *Store {
	if capacity < 1 {
		panic("history: capacity must be positive")
	}

	return &Store{
		entries: make([]string, capacity),
		index:   notNavigating,
	}
}

// Record stores a copy of line as the most recent entry, evicting the oldest
// entry if the store is full. Empty lines and lone newlines are ignored.
//
// Any navigation in progress is abandoned.
func (s *Store) Record(line string) {
	s.index = notNavigating

	if line == "" || line == "\n" {
		return
	}

	// Entries never alias the editor's line buffer.
	s.entries[s.head] = strings.Clone(line)
	s.head = (s.head + 1) % len(s.entries)
	if s.count < len(s.entries) {
		s.count++
	}
}

// Older moves one step further back in history and returns that entry.
// Once the oldest entry is reached it keeps being returned. ok is false if
// the store is empty.
func (s *Store) Older() (line string, ok bool) {
	if s.count == 0 {
		return "", false
	}

	if s.index < s.count-1 {
		s.index++
	}

	return s.at(s.index), true
}

// Newer moves one step towards the most recent entry and returns it.
//
// Stepping past the most recent entry ends the navigation and returns the
// empty string so the caller clears its line. ok is false if no navigation
// was in progress.
func (s *Store) Newer() (line string, ok bool) {
	switch {
	case s.index > 0:
		s.index--
		return s.at(s.index), true
	case s.index == 0:
		s.index = notNavigating
		return "", true
	default:
		return "", false
	}
}

// at returns the entry offset back from the most recent one.
func (s *Store) at(offset int) string {
	capacity := len(s.entries)
	return s.entries[(s.head+capacity-1-offset)%capacity]
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return s.count
}

// Cap returns the maximum number of entries the store holds.
func (s *Store) Cap() int {
	return len(s.entries)
}

// Index returns the current navigation offset, -1 when not navigating.
func (s *Store) Index() int {
	return s.index
}

// Entries returns the stored lines from oldest to most recent.
func (s *Store) Entries() []string {
	out := make([]string, 0, s.count)
	for offset := s.count - 1; offset >= 0; offset-- {
		out = append(out, s.at(offset))
	}
	return out
}

// Clear removes every entry and resets navigation.
func (s *Store) Clear() {
	for i := range s.entries {
		s.entries[i] = ""
	}
	s.head = 0
	s.count = 0
	s.index = notNavigating
}
