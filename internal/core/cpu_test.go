package core

import (
	"testing"

	"os-scheduler/internal/requests"
)

func TestCpuExecute(t *testing.T) {
	cpu := NewCpu()
	p1 := NewProcess(requests.Job{ProcessId: "P1", ArrivalTime: 0, BurstTime: 3}, 0)
	p2 := NewProcess(requests.Job{ProcessId: "P2", ArrivalTime: 4, BurstTime: 2}, 1)

	now := cpu.Execute(p1, 0, 2)
	if now != 2 || p1.RemainingTime != 1 || p1.StartTime != 0 {
		t.Fatalf("after first slice: now=%d remaining=%d start=%d", now, p1.RemainingTime, p1.StartTime)
	}
	now = cpu.Execute(p1, now, 5) // clamped to remaining
	if now != 3 || !p1.Completed() || p1.CompletionTime != 3 {
		t.Fatalf("after second slice: now=%d completion=%d", now, p1.CompletionTime)
	}
	now = cpu.Idle(now, 4)
	now = cpu.Execute(p2, now, 2)

	metric := cpu.Metric()
	if metric.TotalTime != 6 || metric.UtilizationTime != 5 || metric.IdleTime != 1 {
		t.Fatalf("metric = %+v", metric)
	}
	if metric.ContextSwitches != 1 {
		t.Fatalf("context switches = %d, want 1", metric.ContextSwitches)
	}
	segments := cpu.Segments()
	if len(segments) != 3 || !segments[1].Idle() || segments[0].Duration() != 3 {
		t.Fatalf("segments = %+v", segments)
	}
}

func TestCpuExecuteFinishedProcessIsNoop(t *testing.T) {
	cpu := NewCpu()
	p := NewProcess(requests.Job{ProcessId: "P1", BurstTime: 1}, 0)
	p.RemainingTime = 0
	if now := cpu.Execute(p, 7, 3); now != 7 {
		t.Fatalf("now = %d, want 7", now)
	}
	if len(cpu.Segments()) != 0 {
		t.Fatal("no segment expected")
	}
}
