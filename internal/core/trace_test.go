package core

import (
	"reflect"
	"testing"

	"os-scheduler/internal/responses"
)

func TestTraceMergesAdjacentSegments(t *testing.T) {
	var trace Trace
	trace.Record("P1", 0, 0, 1)
	trace.Record("P1", 0, 1, 3)
	trace.Record("P2", 0, 3, 4)
	trace.Record("P2", 1, 4, 6)
	trace.Record("P2", 1, 6, 6) // empty, ignored

	want := []responses.ExecutionSegment{
		{ProcessId: "P1", Start: 0, End: 3},
		{ProcessId: "P2", Start: 3, End: 4},
		{ProcessId: "P2", Start: 4, End: 6, Level: 1},
	}
	if got := trace.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
	if trace.Makespan() != 6 {
		t.Fatalf("makespan = %d, want 6", trace.Makespan())
	}
}

func TestTraceRejectsOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping segment")
		}
	}()
	var trace Trace
	trace.Record("P1", 0, 0, 4)
	trace.Record("P2", 0, 3, 5)
}

func TestTraceSegmentsIsCopy(t *testing.T) {
	var trace Trace
	trace.Record("P1", 0, 0, 2)
	segments := trace.Segments()
	segments[0].End = 100
	if trace.Makespan() != 2 {
		t.Fatal("caller mutation leaked into trace")
	}
}
