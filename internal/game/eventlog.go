package game

import "fmt"

// DefaultLogCapacity is how many entries the event log keeps.
const DefaultLogCapacity = 100

// EventLog is the human-readable, append-only record of a match, bounded to
// its capacity with the oldest entries dropped first.
type EventLog struct {
	entries  []string
	capacity int
}

// NewEventLog creates a log holding at most capacity entries.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &EventLog{capacity: capacity}
}

// Addf appends a formatted entry.
func (l *EventLog) Addf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
}

// Entries returns the retained entries, oldest first.
func (l *EventLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int { return len(l.entries) }
