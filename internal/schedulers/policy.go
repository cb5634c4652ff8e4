package schedulers

import (
	"fmt"
	"strings"

	"os-scheduler/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

// Algorithms lists every policy in the order ScheduleAll reports them.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	MultilevelFeedbackQueue,
}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms {
		if a == algorithm {
			return a, nil
		}
	}
	return "", configurationError(ErrUnknownAlgorithm, "algorithm %q", name)
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "First Come First Serve"
	case ShortestJobFirst:
		return "Shortest Job First"
	case ShortestRemainingTimeFirst:
		return "Shortest Remaining Time First"
	case RoundRobin:
		return "Round Robin"
	case MultilevelFeedbackQueue:
		return "Multilevel Feedback Queue"
	}
	return fmt.Sprintf("Algorithm(%s)", string(a))
}

// Policy decides what runs next. The driver owns time: it admits arrivals,
// runs the slice a policy hands out and reports back unfinished processes.
type Policy interface {
	Algorithm() Algorithm
	// Admit receives a process at its arrival tick.
	Admit(p *core.Process)
	// Next removes the process to run at now and the number of ticks it may
	// run uninterrupted. It returns nil when nothing is ready.
	Next(now int) (*core.Process, int)
	// Preempted takes back a process whose slice of ran ticks ended before
	// it finished. Arrivals up to the end of the slice are admitted first.
	Preempted(p *core.Process, ran int)
}

func min(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
