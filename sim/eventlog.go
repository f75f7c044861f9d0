package sim

// Severity classifies event log entries for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// EventLogEntry is one human-readable transition record.
type EventLogEntry struct {
	Time     float64
	Message  string
	Severity Severity
}

// EventLog is a bounded ring buffer of recent transition records.
// Append never blocks and never fails; once the log is full the oldest
// entry is evicted. Older history is dropped, never persisted.
type EventLog struct {
	capacity int
	entries  []EventLogEntry
}

// NewEventLog creates an EventLog retaining the most recent capacity
// entries. Non-positive capacities fall back to DefaultLogCapacity.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &EventLog{
		capacity: capacity,
		entries:  make([]EventLogEntry, 0, capacity),
	}
}

// Append adds an entry, evicting the oldest when the log is at capacity.
func (l *EventLog) Append(e EventLogEntry) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.capacity-1]
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Capacity returns the maximum number of retained entries.
func (l *EventLog) Capacity() int {
	return l.capacity
}

// Entries returns a copy of the retained entries, oldest first.
func (l *EventLog) Entries() []EventLogEntry {
	out := make([]EventLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
