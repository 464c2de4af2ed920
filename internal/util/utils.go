package util

import "cpu-scheduler-simulator/internal/core"

// CalculateAverage returns mean waiting and turnaround time, zero for no results.
func CalculateAverage(results []core.ScheduleResult) (averageWaitingTime, averageTurnaroundTime float64) {
	if len(results) == 0 {
		return 0, 0
	}
	var waitingTimeSum, turnaroundTimeSum int
	for _, result := range results {
		waitingTimeSum += result.WaitingTime
		turnaroundTimeSum += result.TurnaroundTime
	}

	processCount := float64(len(results))
	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageTurnaroundTime = float64(turnaroundTimeSum) / processCount
	return
}
