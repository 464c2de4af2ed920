package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
)

// ByArrival orders processes by arrival time.
func ByArrival(a, b core.Process) bool {
	return a.ArrivalTime < b.ArrivalTime
}

// ScheduleFirstComeFirstServe runs processes non-preemptively in arrival order.
// Ties keep their input order. The input slice is not modified.
func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.ScheduleResult, []core.TimelineEntry) {
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return ByArrival(jobs[i], jobs[j])
	})

	results := make([]core.ScheduleResult, 0, len(jobs))
	timeline := make([]core.TimelineEntry, 0, len(jobs))
	currentTime := 0
	for _, job := range jobs {
		waitingTime := max(0, currentTime-job.ArrivalTime)
		serviceStart := max(currentTime, job.ArrivalTime)
		currentTime = serviceStart + job.BurstTime

		results = append(results, newResult(job, waitingTime, currentTime))
		timeline = append(timeline, newTimelineEntry(job, serviceStart))
	}
	return results, timeline
}

func newResult(job core.Process, waitingTime, completionTime int) core.ScheduleResult {
	return core.ScheduleResult{
		ID:             job.ID,
		Name:           job.Name,
		BurstTime:      job.BurstTime,
		ArrivalTime:    job.ArrivalTime,
		WaitingTime:    waitingTime,
		TurnaroundTime: waitingTime + job.BurstTime,
		CompletionTime: completionTime,
	}
}

func newTimelineEntry(job core.Process, start int) core.TimelineEntry {
	return core.TimelineEntry{
		ID:       job.ID,
		Name:     job.Name,
		Start:    start,
		Duration: job.BurstTime,
	}
}
