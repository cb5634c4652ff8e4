package core

import "os-scheduler/internal/responses"

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// Cpu executes slices of simulated time and records them on its trace.
type Cpu struct {
	trace         Trace
	metric        CpuMetric
	lastProcessId string
}

func NewCpu() *Cpu {
	return &Cpu{}
}

// Execute runs p for ticks starting at now and returns the tick the slice ends.
// ticks is clamped to p.RemainingTime.
func (c *Cpu) Execute(p *Process, now, ticks int) int {
	if ticks > p.RemainingTime {
		ticks = p.RemainingTime
	}
	if ticks <= 0 {
		return now
	}
	if !p.Started() {
		p.StartTime = now
	}
	if c.lastProcessId != "" && c.lastProcessId != p.Id() {
		c.metric.ContextSwitches++
	}
	c.lastProcessId = p.Id()

	end := now + ticks
	p.RemainingTime -= ticks
	if p.RemainingTime == 0 {
		p.CompletionTime = end
	}
	c.trace.Record(p.Id(), p.QueueLevel, now, end)
	c.metric.UtilizationTime += ticks
	c.metric.TotalTime = end
	return end
}

// Idle leaves the CPU unused over [now, until).
func (c *Cpu) Idle(now, until int) int {
	if until <= now {
		return now
	}
	c.trace.Record(responses.IdleProcessId, 0, now, until)
	c.metric.IdleTime += until - now
	c.metric.TotalTime = until
	return until
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}

func (c *Cpu) Segments() []responses.ExecutionSegment {
	return c.trace.Segments()
}
