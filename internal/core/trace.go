package core

import (
	"fmt"

	"os-scheduler/internal/responses"
)

// Trace accumulates execution segments in time order. A segment that starts
// where the previous one ended, for the same process at the same level, is
// merged into it.
type Trace struct {
	segments []responses.ExecutionSegment
}

func (t *Trace) Record(processId string, level, start, end int) {
	if end <= start {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if start < last.End {
			panic(fmt.Sprintf("trace: segment %s [%d,%d) overlaps previous end %d", processId, start, end, last.End))
		}
		if last.ProcessId == processId && last.Level == level && last.End == start {
			last.End = end
			return
		}
	}
	t.segments = append(t.segments, responses.ExecutionSegment{
		ProcessId: processId,
		Start:     start,
		End:       end,
		Level:     level,
	})
}

// Segments returns a copy; the trace stays owned by the builder.
func (t *Trace) Segments() []responses.ExecutionSegment {
	out := make([]responses.ExecutionSegment, len(t.segments))
	copy(out, t.segments)
	return out
}

func (t *Trace) Makespan() int {
	if len(t.segments) == 0 {
		return 0
	}
	return t.segments[len(t.segments)-1].End
}
