package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(algorithm Algorithm, cpuMetric core.CpuMetric, processCount int,
	trace []responses.ExecutionSegment, jobs []requests.Job) responses.ScheduleResponse {
	proccessDetails := GenerateProcessDetails(jobs, trace)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(processCount) / float64(cpuMetric.TotalTime)
	}
	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		ContextSwitches:       cpuMetric.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               proccessDetails,
		Trace:                 trace,
	}
}

// GenerateProcessDetails derives per-process metrics from a completed trace:
// the first segment of a process is its start, the end of its last segment its
// completion. Rows follow the order of jobs.
func GenerateProcessDetails(jobs []requests.Job, trace []responses.ExecutionSegment) []responses.ProcessResponse {
	type span struct {
		first, last responses.ExecutionSegment
	}
	spans := make(map[string]*span, len(jobs))
	for _, segment := range trace {
		if segment.Idle() {
			continue
		}
		s, ok := spans[segment.ProcessId]
		if !ok {
			s = &span{first: segment}
			spans[segment.ProcessId] = s
		}
		s.last = segment
	}

	details := make([]responses.ProcessResponse, 0, len(jobs))
	for _, job := range jobs {
		s, ok := spans[job.ProcessId]
		if !ok {
			continue
		}
		turnAroundTime := s.last.End - job.ArrivalTime
		details = append(details, responses.ProcessResponse{
			ProcessId:      job.ProcessId,
			ArrivalTime:    job.ArrivalTime,
			BurstTime:      job.BurstTime,
			StartTime:      s.first.Start,
			CompletionTime: s.last.End,
			ResponseTime:   s.first.Start - job.ArrivalTime,
			TurnAroundTime: turnAroundTime,
			WaitingTime:    turnAroundTime - job.BurstTime,
			FinalLevel:     s.last.Level,
		})
	}
	return details
}
