package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// shortestRemainingTimeFirst re-decides every tick. On equal remaining time the
// process that ran last keeps the CPU, then earlier arrival, then input order.
type shortestRemainingTimeFirst struct {
	ready   *core.PriorityQueue
	running *core.Process
}

func NewShortestRemainingTimeFirst() Policy {
	return &shortestRemainingTimeFirst{ready: core.NewPriorityQueue(core.ShorterRemaining)}
}

func (s *shortestRemainingTimeFirst) Algorithm() Algorithm {
	return ShortestRemainingTimeFirst
}

func (s *shortestRemainingTimeFirst) Admit(p *core.Process) {
	s.ready.Admit(p)
}

func (s *shortestRemainingTimeFirst) Next(now int) (*core.Process, int) {
	p := s.ready.PopMinBy(s.less)
	if p == nil {
		return nil, 0
	}
	s.running = p
	return p, 1
}

func (s *shortestRemainingTimeFirst) less(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if aRunning, bRunning := a == s.running, b == s.running; aRunning != bRunning {
		return aRunning
	}
	return core.ArrivedBefore(a, b)
}

func (s *shortestRemainingTimeFirst) Preempted(p *core.Process, ran int) {
	s.ready.Admit(p)
}

func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateJobs(request.Jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return simulate(NewShortestRemainingTimeFirst(), request.Jobs), nil
}
