package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSimulationTrace_RecordsInOrder(t *testing.T) {
	st := NewSimulationTrace()
	st.Record(TransitionRecord{Clock: 1, MachineID: 0, Kind: KindBreakdown})
	st.Record(TransitionRecord{Clock: 2, MachineID: 0, Kind: KindRepairStart})

	if len(st.Records) != 2 {
		t.Fatalf("Records: got %d, want 2", len(st.Records))
	}
	if st.Records[0].Kind != KindBreakdown || st.Records[1].Kind != KindRepairStart {
		t.Errorf("record order: got [%s %s], want [breakdown repair_start]",
			st.Records[0].Kind, st.Records[1].Kind)
	}
}

func TestWriteJSONL(t *testing.T) {
	st := NewSimulationTrace()
	st.Record(TransitionRecord{Clock: 5.5, MachineID: 3, Kind: KindPartDone, Detail: "parts_made=1"})
	st.Record(TransitionRecord{Clock: 6, MachineID: -1, Kind: KindJobDone})

	var buf bytes.Buffer
	if err := st.WriteJSONL(&buf); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("JSONL lines: got %d, want 2", len(lines))
	}

	var first TransitionRecord
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.Clock != 5.5 || first.MachineID != 3 || first.Kind != KindPartDone {
		t.Errorf("first record round-trip: got %+v", first)
	}
}

func TestWriteJSONL_EmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSimulationTrace().WriteJSONL(&buf); err != nil {
		t.Fatalf("WriteJSONL on empty trace: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty trace output: got %q, want empty", buf.String())
	}
}
