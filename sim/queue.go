// Implements the RepairQueue, which holds the ids of broken machines
// waiting for the repairman. Machines are enqueued at breakdown time.

package sim

import (
	"fmt"
	"strings"
)

// RepairQueue is a FIFO queue of machine ids awaiting repair.
// A machine id appears at most once: Enqueue rejects duplicates, and the
// repairman removes the id when it takes the machine as its active repair.
type RepairQueue struct {
	ids []int
}

// Enqueue adds a machine id to the back of the queue.
// Returns false (no-op) if the id is already queued.
func (rq *RepairQueue) Enqueue(id int) bool {
	if rq.Contains(id) {
		return false
	}
	rq.ids = append(rq.ids, id)
	return true
}

// DequeueHead removes and returns the id at the front of the queue.
// Returns ErrEmptyQueue if the queue is empty; callers must check Len first.
func (rq *RepairQueue) DequeueHead() (int, error) {
	if len(rq.ids) == 0 {
		return 0, ErrEmptyQueue
	}
	head := rq.ids[0]
	rq.ids = rq.ids[1:]
	return head, nil
}

// Len returns the number of machines waiting for repair.
func (rq *RepairQueue) Len() int {
	return len(rq.ids)
}

// Contains reports whether the given machine id is waiting in the queue.
func (rq *RepairQueue) Contains(id int) bool {
	for _, queued := range rq.ids {
		if queued == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the queue contents in FIFO order.
func (rq *RepairQueue) IDs() []int {
	out := make([]int, len(rq.ids))
	copy(out, rq.ids)
	return out
}

func (rq *RepairQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range rq.ids {
		sb.WriteString(fmt.Sprint(id))
		if i < len(rq.ids)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
