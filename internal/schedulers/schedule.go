package schedulers

import (
	"sync"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// Schedule runs the algorithm named in the request with the request's
// parameters.
func Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	algorithm, err := ParseAlgorithm(request.Algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return scheduleWith(algorithm, request)
}

func scheduleWith(algorithm Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(request)
	case RoundRobin:
		return ScheduleRoundRobin(request, request.TimeQuantum)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(request, request.Levels)
	}
	return responses.ScheduleResponse{}, configurationError(ErrUnknownAlgorithm, "algorithm %q", string(algorithm))
}

// ScheduleAll runs every algorithm over the same jobs. Runs are independent
// and execute concurrently; results come back in Algorithms order.
func ScheduleAll(request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	if err := validateJobs(request.Jobs); err != nil {
		return nil, err
	}
	if err := validateTimeQuantum(request.TimeQuantum); err != nil {
		return nil, err
	}
	if err := validateLevels(request.Levels); err != nil {
		return nil, err
	}

	results := make([]responses.ScheduleResponse, len(Algorithms))
	errs := make([]error, len(Algorithms))
	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = scheduleWith(algorithm, request)
		}(i, algorithm)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
