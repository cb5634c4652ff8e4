package core

import (
	"testing"

	"os-scheduler/internal/requests"
)

func ids(processes []*Process) []string {
	out := make([]string, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.Id())
	}
	return out
}

func equalIds(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFifoQueue(t *testing.T) {
	q := NewFifoQueue()
	if !q.IsEmpty() || q.Pop() != nil {
		t.Fatal("new queue should be empty")
	}
	processes := NewProcesses([]requests.Job{
		{ProcessId: "A", BurstTime: 1},
		{ProcessId: "B", BurstTime: 1},
		{ProcessId: "C", BurstTime: 1},
	})
	for _, p := range processes {
		q.Admit(p)
	}
	if got := ids(q.PeekAll()); !equalIds(got, []string{"A", "B", "C"}) {
		t.Fatalf("PeekAll = %v", got)
	}
	if p := q.Pop(); p.Id() != "A" {
		t.Fatalf("Pop = %s, want A", p.Id())
	}
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
}

func TestPriorityQueueTieBreaks(t *testing.T) {
	processes := NewProcesses([]requests.Job{
		{ProcessId: "late", ArrivalTime: 2, BurstTime: 3},
		{ProcessId: "long", ArrivalTime: 0, BurstTime: 9},
		{ProcessId: "first", ArrivalTime: 1, BurstTime: 3},
		{ProcessId: "second", ArrivalTime: 1, BurstTime: 3},
	})
	q := NewPriorityQueue(ShorterBurst)
	for _, p := range processes {
		q.Admit(p)
	}
	var order []string
	for !q.IsEmpty() {
		order = append(order, q.PopMin().Id())
	}
	want := []string{"first", "second", "late", "long"}
	if !equalIds(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	if q.PopMin() != nil {
		t.Fatal("PopMin on empty queue should return nil")
	}
}

func TestShorterRemainingUsesRemainingTime(t *testing.T) {
	processes := NewProcesses([]requests.Job{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 8},
		{ProcessId: "B", ArrivalTime: 1, BurstTime: 4},
	})
	processes[0].RemainingTime = 2
	if !ShorterRemaining(processes[0], processes[1]) {
		t.Fatal("A has less remaining time and should sort first")
	}
	if !ShorterBurst(processes[1], processes[0]) {
		t.Fatal("B has the shorter burst and should sort first")
	}
}

func TestMultilevelQueue(t *testing.T) {
	q := NewMultilevelQueue(3)
	processes := NewProcesses([]requests.Job{
		{ProcessId: "low", BurstTime: 1},
		{ProcessId: "high", BurstTime: 1},
		{ProcessId: "mid", BurstTime: 1},
	})
	processes[0].QueueLevel = 2
	processes[2].QueueLevel = 1
	for _, p := range processes {
		q.Admit(p)
	}
	if got := ids(q.PeekAll()); !equalIds(got, []string{"high", "mid", "low"}) {
		t.Fatalf("PeekAll = %v", got)
	}
	if q.Level(2).Len() != 1 || q.LevelCount() != 3 {
		t.Fatal("unexpected level layout")
	}
	var order []string
	for !q.IsEmpty() {
		order = append(order, q.Pop().Id())
	}
	if !equalIds(order, []string{"high", "mid", "low"}) {
		t.Fatalf("order = %v", order)
	}
}
