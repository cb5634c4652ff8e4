package util

import "os-scheduler/internal/responses"

// CalculateAverage returns zeros for an empty slice.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0
	}
	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageResponseTime = float64(responseTimeSum) / proccessCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}
