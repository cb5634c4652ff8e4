package core

import "os-scheduler/internal/requests"

// Process is the per-run simulation state of one job. Job is a copy of the
// caller's input and is never written; everything else is derived during the run.
type Process struct {
	Job   requests.Job
	Index int // position in the caller's input, the last tie-breaker

	RemainingTime  int
	StartTime      int
	CompletionTime int

	QueueLevel          int
	TicksAtCurrentLevel int
}

func NewProcess(job requests.Job, index int) *Process {
	return &Process{
		Job:           job,
		Index:         index,
		RemainingTime: job.BurstTime,
		StartTime:     -1,
	}
}

// NewProcesses builds fresh state for every job, preserving input order.
func NewProcesses(jobs []requests.Job) []*Process {
	processes := make([]*Process, 0, len(jobs))
	for i, job := range jobs {
		processes = append(processes, NewProcess(job, i))
	}
	return processes
}

func (p *Process) Id() string {
	return p.Job.ProcessId
}

func (p *Process) Started() bool {
	return p.StartTime >= 0
}

func (p *Process) Completed() bool {
	return p.RemainingTime == 0
}

// ArrivedBefore orders by arrival time, then input order.
func ArrivedBefore(a, b *Process) bool {
	if a.Job.ArrivalTime != b.Job.ArrivalTime {
		return a.Job.ArrivalTime < b.Job.ArrivalTime
	}
	return a.Index < b.Index
}

func ShorterBurst(a, b *Process) bool {
	if a.Job.BurstTime != b.Job.BurstTime {
		return a.Job.BurstTime < b.Job.BurstTime
	}
	return ArrivedBefore(a, b)
}

func ShorterRemaining(a, b *Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return ArrivedBefore(a, b)
}
