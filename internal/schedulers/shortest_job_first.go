package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// shortestJobFirst is non-preemptive: the shortest burst among ready processes
// is dispatched and runs to completion.
type shortestJobFirst struct {
	ready *core.PriorityQueue
}

func NewShortestJobFirst() Policy {
	return &shortestJobFirst{ready: core.NewPriorityQueue(core.ShorterBurst)}
}

func (s *shortestJobFirst) Algorithm() Algorithm {
	return ShortestJobFirst
}

func (s *shortestJobFirst) Admit(p *core.Process) {
	s.ready.Admit(p)
}

func (s *shortestJobFirst) Next(now int) (*core.Process, int) {
	p := s.ready.PopMin()
	if p == nil {
		return nil, 0
	}
	return p, p.RemainingTime
}

func (s *shortestJobFirst) Preempted(p *core.Process, ran int) {
	s.ready.Admit(p)
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateJobs(request.Jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return simulate(NewShortestJobFirst(), request.Jobs), nil
}
