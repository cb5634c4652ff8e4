package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func randomJobs(r *rand.Rand, n int) []requests.Job {
	out := make([]requests.Job, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, requests.Job{
			ProcessId:   fmt.Sprintf("P%d", i+1),
			ArrivalTime: r.Intn(20),
			BurstTime:   1 + r.Intn(9),
		})
	}
	return out
}

func checkInvariants(t *testing.T, jobs []requests.Job, response responses.ScheduleResponse) {
	t.Helper()
	if len(response.Details) != len(jobs) {
		t.Fatalf("%d detail rows for %d jobs", len(response.Details), len(jobs))
	}

	ran := make(map[string]int)
	lastLevel := make(map[string]int)
	for i, segment := range response.Trace {
		if segment.End <= segment.Start {
			t.Fatalf("empty segment %+v", segment)
		}
		if i == 0 && segment.Start != 0 {
			t.Fatalf("trace starts at %d", segment.Start)
		}
		if i > 0 && segment.Start != response.Trace[i-1].End {
			t.Fatalf("segment %+v does not follow %+v", segment, response.Trace[i-1])
		}
		if segment.Idle() {
			continue
		}
		ran[segment.ProcessId] += segment.Duration()
		if level, ok := lastLevel[segment.ProcessId]; ok && segment.Level < level {
			t.Fatalf("%s promoted from level %d to %d", segment.ProcessId, level, segment.Level)
		}
		lastLevel[segment.ProcessId] = segment.Level
	}
	if n := len(response.Trace); n > 0 && response.Trace[n-1].End != response.TotalTime {
		t.Fatalf("makespan %d, trace ends at %d", response.TotalTime, response.Trace[n-1].End)
	}

	for _, job := range jobs {
		if ran[job.ProcessId] != job.BurstTime {
			t.Errorf("%s ran %d ticks, burst %d", job.ProcessId, ran[job.ProcessId], job.BurstTime)
		}
	}
	for _, d := range response.Details {
		if d.TurnAroundTime != d.CompletionTime-d.ArrivalTime || d.TurnAroundTime < d.BurstTime {
			t.Errorf("%s turnaround %d invalid", d.ProcessId, d.TurnAroundTime)
		}
		if d.WaitingTime != d.TurnAroundTime-d.BurstTime || d.WaitingTime < 0 {
			t.Errorf("%s waiting %d invalid", d.ProcessId, d.WaitingTime)
		}
		if d.ResponseTime < 0 || d.ResponseTime > d.WaitingTime {
			t.Errorf("%s response %d outside [0, %d]", d.ProcessId, d.ResponseTime, d.WaitingTime)
		}
	}
}

func TestInvariantsOnRandomInputs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		request := &requests.ScheduleRequests{
			TimeQuantum: 1 + r.Intn(4),
			Levels: []requests.Level{
				{TimeQuantum: 1, Allotment: 1 + r.Intn(3)},
				{TimeQuantum: 2, Allotment: 4},
				{TimeQuantum: 4, Allotment: 4},
			},
			Jobs: randomJobs(r, 1+r.Intn(8)),
		}
		results, err := ScheduleAll(request)
		if err != nil {
			t.Fatalf("round %d: unexpected error: %v", round, err)
		}
		for _, response := range results {
			t.Run(fmt.Sprintf("%d/%s", round, response.Algorithm), func(t *testing.T) {
				checkInvariants(t, request.Jobs, response)
			})
		}
	}
}

func TestNonPreemptivePoliciesProduceOneSegmentPerProcess(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	request := &requests.ScheduleRequests{Jobs: randomJobs(r, 10)}
	for _, run := range []func(*requests.ScheduleRequests) (responses.ScheduleResponse, error){
		ScheduleFirstComeFirstServe,
		ScheduleShortestJobFirst,
	} {
		response, err := run(request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := make(map[string]bool)
		for _, segment := range response.Trace {
			if segment.Idle() {
				continue
			}
			if seen[segment.ProcessId] {
				t.Fatalf("%s: %s split across segments", response.Algorithm, segment.ProcessId)
			}
			seen[segment.ProcessId] = true
		}
	}
}
