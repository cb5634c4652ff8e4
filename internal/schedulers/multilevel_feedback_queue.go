package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// multilevelFeedbackQueue serves the highest non-empty level, FIFO within a
// level. A process that uses up its allotment at a level moves one level down;
// at the lowest level its allotment simply restarts. There is no priority
// boost, and an arrival at level 0 waits for the running slice to finish.
type multilevelFeedbackQueue struct {
	levels []requests.Level
	ready  *core.MultilevelQueue
}

func NewMultilevelFeedbackQueue(levels []requests.Level) Policy {
	return &multilevelFeedbackQueue{
		levels: append([]requests.Level(nil), levels...),
		ready:  core.NewMultilevelQueue(len(levels)),
	}
}

func (m *multilevelFeedbackQueue) Algorithm() Algorithm {
	return MultilevelFeedbackQueue
}

func (m *multilevelFeedbackQueue) Admit(p *core.Process) {
	p.QueueLevel = 0
	p.TicksAtCurrentLevel = 0
	m.ready.Admit(p)
}

func (m *multilevelFeedbackQueue) Next(now int) (*core.Process, int) {
	p := m.ready.Pop()
	if p == nil {
		return nil, 0
	}
	level := m.levels[p.QueueLevel]
	return p, min(level.TimeQuantum, p.RemainingTime, level.Allotment-p.TicksAtCurrentLevel)
}

func (m *multilevelFeedbackQueue) Preempted(p *core.Process, ran int) {
	p.TicksAtCurrentLevel += ran
	if p.TicksAtCurrentLevel >= m.levels[p.QueueLevel].Allotment {
		if p.QueueLevel < len(m.levels)-1 {
			p.QueueLevel++
			log.Println("pid:", p.Id(), "allotment used up. demoted to level", p.QueueLevel)
		}
		p.TicksAtCurrentLevel = 0
	}
	m.ready.Admit(p)
}

func ScheduleMultilevelFeedbackQueue(request *requests.ScheduleRequests, levels []requests.Level) (responses.ScheduleResponse, error) {
	log.Println("mlfq algorithm with levels = ", levels)
	if err := validateLevels(levels); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := validateJobs(request.Jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return simulate(NewMultilevelFeedbackQueue(levels), request.Jobs), nil
}
