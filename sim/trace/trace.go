package trace

import (
	"encoding/json"
	"io"
)

// SimulationTrace collects transition records during a simulation run.
// Unlike the simulation's bounded event log, the trace is unbounded and
// intended for offline analysis of a finite run.
type SimulationTrace struct {
	Records []TransitionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Records: make([]TransitionRecord, 0),
	}
}

// Record appends a transition record.
func (st *SimulationTrace) Record(r TransitionRecord) {
	st.Records = append(st.Records, r)
}

// WriteJSONL writes the trace as JSON Lines, one record per line.
func (st *SimulationTrace) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, r := range st.Records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
