package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"os-scheduler/internal/requests"
)

func readConfig(t *testing.T, yaml string) (*SchedulerConfig, error) {
	t.Helper()
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("reading yaml: %v", err)
	}
	return parseSchedulerConfig(v)
}

func TestParseSchedulerConfig(t *testing.T) {
	c, err := readConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 3
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2]
    levels_allotment: [2, 6]
  playback:
    tick_interval_ms: 50
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 8080 || c.RoundRobinTimeQuantum != 3 || c.PlaybackTickInterval != 50*time.Millisecond {
		t.Fatalf("unexpected config: %+v", c)
	}
	want := []requests.Level{{TimeQuantum: 1, Allotment: 2}, {TimeQuantum: 2, Allotment: 6}}
	if got := c.Levels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %+v, want %+v", got, want)
	}
}

func TestParseSchedulerConfigDefaults(t *testing.T) {
	c, err := readConfig(t, "port: 9000\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.RoundRobinTimeQuantum != 2 || c.PlaybackTickInterval != 200*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	want := []requests.Level{{TimeQuantum: 2, Allotment: 2}, {TimeQuantum: 4, Allotment: 4}, {TimeQuantum: 8, Allotment: 8}}
	if got := c.Levels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %+v, want %+v", got, want)
	}
}

func TestParseSchedulerConfigMismatchedLevels(t *testing.T) {
	_, err := readConfig(t, `
scheduler:
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2]
    levels_allotment: [2]
`)
	if err == nil {
		t.Fatal("expected error for mismatched level lists")
	}
}

func TestApplyDefaults(t *testing.T) {
	c := &SchedulerConfig{
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{1},
		MultilevelFeedbackQueueLevelsAllotment:   []int{3},
	}
	request := &requests.ScheduleRequests{}
	c.ApplyDefaults(request)
	if request.TimeQuantum != 4 || len(request.Levels) != 1 || request.Levels[0].Allotment != 3 {
		t.Fatalf("unexpected request: %+v", request)
	}

	explicit := &requests.ScheduleRequests{TimeQuantum: 1, Levels: []requests.Level{{TimeQuantum: 5, Allotment: 5}}}
	c.ApplyDefaults(explicit)
	if explicit.TimeQuantum != 1 || explicit.Levels[0].TimeQuantum != 5 {
		t.Fatalf("explicit parameters overwritten: %+v", explicit)
	}
}
