package sim

import (
	"fmt"
	"testing"
)

func TestEventLog_EvictsOldestAtCapacity(t *testing.T) {
	// GIVEN a log with capacity 3
	log := NewEventLog(3)

	// WHEN 5 entries are appended
	for i := 0; i < 5; i++ {
		log.Append(EventLogEntry{Time: float64(i), Message: fmt.Sprintf("entry %d", i), Severity: SeverityInfo})
	}

	// THEN only the 3 most recent remain, oldest first
	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len: got %d, want 3", len(entries))
	}
	for i, want := range []float64{2, 3, 4} {
		if entries[i].Time != want {
			t.Errorf("entry %d: time got %v, want %v", i, entries[i].Time, want)
		}
	}
}

func TestEventLog_DefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		log := NewEventLog(capacity)
		if log.Capacity() != DefaultLogCapacity {
			t.Errorf("NewEventLog(%d): capacity got %d, want %d", capacity, log.Capacity(), DefaultLogCapacity)
		}
	}
}

func TestEventLog_EntriesReturnsCopy(t *testing.T) {
	log := NewEventLog(4)
	log.Append(EventLogEntry{Message: "original", Severity: SeverityError})

	entries := log.Entries()
	entries[0].Message = "mutated"

	if got := log.Entries()[0].Message; got != "original" {
		t.Errorf("log entry after mutating copy: got %q, want %q", got, "original")
	}
}

func TestEventLog_AppendNeverFails(t *testing.T) {
	// Appending far past capacity keeps working and keeps Len at capacity.
	log := NewEventLog(2)
	for i := 0; i < 1000; i++ {
		log.Append(EventLogEntry{Time: float64(i)})
	}
	if log.Len() != 2 {
		t.Errorf("Len after 1000 appends: got %d, want 2", log.Len())
	}
	if got := log.Entries()[1].Time; got != 999 {
		t.Errorf("newest entry time: got %v, want 999", got)
	}
}
