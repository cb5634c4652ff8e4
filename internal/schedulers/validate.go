package schedulers

import (
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func validateJobs(jobs []requests.Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for i, job := range jobs {
		if job.ProcessId == "" {
			return configurationError(ErrEmptyProcessId, "jobs[%d].process_id", i)
		}
		if job.ProcessId == responses.IdleProcessId {
			return configurationError(ErrReservedProcessId, "jobs[%d].process_id %q", i, job.ProcessId)
		}
		if _, ok := seen[job.ProcessId]; ok {
			return configurationError(ErrDuplicateProcessId, "jobs[%d].process_id %q", i, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return configurationError(ErrNegativeArrivalTime, "jobs[%d].arrival_time %d", i, job.ArrivalTime)
		}
		if job.BurstTime < 1 {
			return configurationError(ErrNonPositiveBurstTime, "jobs[%d].burst_time %d", i, job.BurstTime)
		}
	}
	return nil
}

func validateTimeQuantum(timeQuantum int) error {
	if timeQuantum < 1 {
		return configurationError(ErrNonPositiveQuantum, "time_quantum %d", timeQuantum)
	}
	return nil
}

func validateLevels(levels []requests.Level) error {
	if len(levels) == 0 {
		return configurationError(ErrNoLevels, "levels")
	}
	for i, level := range levels {
		if level.TimeQuantum < 1 {
			return configurationError(ErrNonPositiveQuantum, "levels[%d].time_quantum %d", i, level.TimeQuantum)
		}
		if level.Allotment < 1 {
			return configurationError(ErrNonPositiveAllotment, "levels[%d].allotment %d", i, level.Allotment)
		}
		if level.Allotment < level.TimeQuantum {
			return configurationError(ErrAllotmentBelowQuantum, "levels[%d].allotment %d < time_quantum %d", i, level.Allotment, level.TimeQuantum)
		}
	}
	return nil
}
