package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// firstComeFirstServe runs processes to completion in arrival order. The driver
// admits arrivals sorted by arrival time then input order, so a FIFO is enough.
type firstComeFirstServe struct {
	ready *core.FifoQueue
}

func NewFirstComeFirstServe() Policy {
	return &firstComeFirstServe{ready: core.NewFifoQueue()}
}

func (f *firstComeFirstServe) Algorithm() Algorithm {
	return FirstComeFirstServe
}

func (f *firstComeFirstServe) Admit(p *core.Process) {
	f.ready.Admit(p)
}

func (f *firstComeFirstServe) Next(now int) (*core.Process, int) {
	p := f.ready.Pop()
	if p == nil {
		return nil, 0
	}
	return p, p.RemainingTime
}

func (f *firstComeFirstServe) Preempted(p *core.Process, ran int) {
	f.ready.Admit(p)
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateJobs(request.Jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return simulate(NewFirstComeFirstServe(), request.Jobs), nil
}
