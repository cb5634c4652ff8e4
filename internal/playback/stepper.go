package playback

import (
	"context"
	"time"

	"os-scheduler/internal/responses"
)

// Tick is what held the CPU during [Tick, Tick+1).
type Tick struct {
	Tick      int
	ProcessId string
	Level     int
}

// Stepper walks a finished trace one tick at a time. It only reads the trace.
type Stepper struct {
	trace   []responses.ExecutionSegment
	segment int
	tick    int
}

func NewStepper(trace []responses.ExecutionSegment) *Stepper {
	s := &Stepper{trace: append([]responses.ExecutionSegment(nil), trace...)}
	s.Reset()
	return s
}

func (s *Stepper) Reset() {
	s.segment = 0
	s.tick = 0
	if len(s.trace) > 0 {
		s.tick = s.trace[0].Start
	}
}

// Len is the number of ticks in the trace.
func (s *Stepper) Len() int {
	if len(s.trace) == 0 {
		return 0
	}
	return s.trace[len(s.trace)-1].End - s.trace[0].Start
}

func (s *Stepper) Next() (Tick, bool) {
	for s.segment < len(s.trace) && s.tick >= s.trace[s.segment].End {
		s.segment++
		if s.segment < len(s.trace) {
			s.tick = s.trace[s.segment].Start
		}
	}
	if s.segment >= len(s.trace) {
		return Tick{}, false
	}
	segment := s.trace[s.segment]
	t := Tick{Tick: s.tick, ProcessId: segment.ProcessId, Level: segment.Level}
	s.tick++
	return t, true
}

// Play calls fn for every tick, one per interval. It returns ctx.Err() if the
// context ends first.
func Play(ctx context.Context, trace []responses.ExecutionSegment, interval time.Duration, fn func(Tick)) error {
	stepper := NewStepper(trace)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		t, ok := stepper.Next()
		if !ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(t)
		}
	}
}
