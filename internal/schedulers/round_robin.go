package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// roundRobin serves a single FIFO in slices of timeQuantum. A preempted process
// goes to the tail after the arrivals of its slice.
type roundRobin struct {
	timeQuantum int
	ready       *core.FifoQueue
}

func NewRoundRobin(timeQuantum int) Policy {
	return &roundRobin{timeQuantum: timeQuantum, ready: core.NewFifoQueue()}
}

func (r *roundRobin) Algorithm() Algorithm {
	return RoundRobin
}

func (r *roundRobin) Admit(p *core.Process) {
	r.ready.Admit(p)
}

func (r *roundRobin) Next(now int) (*core.Process, int) {
	p := r.ready.Pop()
	if p == nil {
		return nil, 0
	}
	return p, min(r.timeQuantum, p.RemainingTime)
}

func (r *roundRobin) Preempted(p *core.Process, ran int) {
	r.ready.Admit(p)
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	if err := validateTimeQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := validateJobs(request.Jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return simulate(NewRoundRobin(timeQuantum), request.Jobs), nil
}
