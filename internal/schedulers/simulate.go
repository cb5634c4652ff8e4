package schedulers

import (
	"fmt"
	"log"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

type State int

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Simulation is one run of a policy over a job list. It owns all process
// state for the run; nothing is shared with other runs.
type Simulation struct {
	policy    Policy
	processes []*core.Process
	pending   []*core.Process
	cpu       *core.Cpu
	now       int
	state     State
	completed int
}

// NewSimulation expects jobs that already passed validation.
func NewSimulation(policy Policy, jobs []requests.Job) *Simulation {
	processes := core.NewProcesses(jobs)
	pending := append([]*core.Process(nil), processes...)
	sort.SliceStable(pending, func(i, j int) bool {
		return core.ArrivedBefore(pending[i], pending[j])
	})
	s := &Simulation{
		policy:    policy,
		processes: processes,
		pending:   pending,
		cpu:       core.NewCpu(),
		state:     Idle,
	}
	if len(processes) == 0 {
		s.state = Completed
	}
	return s
}

func (s *Simulation) State() State {
	return s.state
}

func (s *Simulation) Now() int {
	return s.now
}

// Processes returns the run's process records in input order.
func (s *Simulation) Processes() []*core.Process {
	return s.processes
}

func (s *Simulation) admitArrivals() {
	for len(s.pending) > 0 && s.pending[0].Job.ArrivalTime <= s.now {
		p := s.pending[0]
		s.pending = s.pending[1:]
		s.policy.Admit(p)
	}
}

// Step makes one dispatch decision and advances time past it. It returns
// false once every process has completed.
func (s *Simulation) Step() bool {
	if s.state == Completed {
		return false
	}
	s.admitArrivals()

	p, ticks := s.policy.Next(s.now)
	if p == nil {
		if len(s.pending) == 0 {
			panic(fmt.Sprintf("%s: nothing ready and nothing pending with %d of %d completed",
				s.policy.Algorithm(), s.completed, len(s.processes)))
		}
		s.state = Idle
		s.now = s.cpu.Idle(s.now, s.pending[0].Job.ArrivalTime)
		return true
	}

	s.state = Running
	start := s.now
	s.now = s.cpu.Execute(p, start, ticks)
	if s.now == start {
		panic(fmt.Sprintf("%s: empty slice for pid %s", s.policy.Algorithm(), p.Id()))
	}
	s.admitArrivals()

	if p.Completed() {
		s.completed++
		log.Println("pid:", p.Id(), "proccess completed at", s.now)
		if s.completed == len(s.processes) {
			s.state = Completed
		}
		return true
	}
	s.policy.Preempted(p, s.now-start)
	return true
}

func (s *Simulation) Run() {
	for s.Step() {
	}
}

// Response builds the metrics of a completed run.
func (s *Simulation) Response() responses.ScheduleResponse {
	return generateResponse(s.policy.Algorithm(), s.cpu.Metric(), len(s.processes),
		s.cpu.Segments(), jobsOf(s.processes))
}

func jobsOf(processes []*core.Process) []requests.Job {
	jobs := make([]requests.Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, p.Job)
	}
	return jobs
}

func simulate(policy Policy, jobs []requests.Job) responses.ScheduleResponse {
	log.Println("running", policy.Algorithm(), "with", len(jobs), "jobs")
	simulation := NewSimulation(policy, jobs)
	simulation.Run()
	response := simulation.Response()
	log.Printf("response is: %s", util.Pretty(response))
	return response
}
