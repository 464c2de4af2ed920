package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
)

// ByBurst orders processes by burst time.
func ByBurst(a, b core.Process) bool {
	return a.BurstTime < b.BurstTime
}

// ScheduleShortestJobFirst runs processes shortest burst first, treating every
// process as available at time 0. Arrival times are carried into the results
// but never consulted. Ties keep their input order.
func ScheduleShortestJobFirst(processes []core.Process) ([]core.ScheduleResult, []core.TimelineEntry) {
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return ByBurst(jobs[i], jobs[j])
	})

	results := make([]core.ScheduleResult, 0, len(jobs))
	timeline := make([]core.TimelineEntry, 0, len(jobs))
	currentTime := 0
	for _, job := range jobs {
		waitingTime := currentTime
		currentTime += job.BurstTime

		results = append(results, newResult(job, waitingTime, currentTime))
		timeline = append(timeline, newTimelineEntry(job, waitingTime))
	}
	return results, timeline
}

// ScheduleShortestJobFirstArrivalAware is textbook non-preemptive SJF: at each
// decision point it picks the shortest job among those that have arrived, and
// idles until the next arrival when none has. Ties go to the earlier arrival,
// then to input order.
func ScheduleShortestJobFirstArrivalAware(processes []core.Process) ([]core.ScheduleResult, []core.TimelineEntry) {
	results := make([]core.ScheduleResult, 0, len(processes))
	timeline := make([]core.TimelineEntry, 0, len(processes))
	done := make([]bool, len(processes))
	currentTime := 0

	for completed := 0; completed < len(processes); completed++ {
		next := pickShortestArrived(processes, done, currentTime)
		if next == -1 {
			currentTime = nextArrival(processes, done)
			next = pickShortestArrived(processes, done, currentTime)
		}
		job := processes[next]
		done[next] = true

		start := currentTime
		currentTime += job.BurstTime
		results = append(results, newResult(job, start-job.ArrivalTime, currentTime))
		timeline = append(timeline, newTimelineEntry(job, start))
	}
	return results, timeline
}

func pickShortestArrived(processes []core.Process, done []bool, currentTime int) int {
	selected := -1
	for i, p := range processes {
		if done[i] || p.ArrivalTime > currentTime {
			continue
		}
		if selected == -1 {
			selected = i
			continue
		}
		best := processes[selected]
		if p.BurstTime < best.BurstTime || (p.BurstTime == best.BurstTime && p.ArrivalTime < best.ArrivalTime) {
			selected = i
		}
	}
	return selected
}

func nextArrival(processes []core.Process, done []bool) int {
	earliest := -1
	for i, p := range processes {
		if done[i] {
			continue
		}
		if earliest == -1 || p.ArrivalTime < earliest {
			earliest = p.ArrivalTime
		}
	}
	return earliest
}
