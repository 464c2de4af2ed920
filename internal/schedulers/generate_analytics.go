package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/util"
)

type Analytics struct {
	TotalWaitingTime      int
	TotalTurnaroundTime   int
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	Cpu                   core.CpuMetric
	CpuUtilization        float64
	CpuThroughput         float64
}

func TotalWaiting(results []core.ScheduleResult) int {
	total := 0
	for _, result := range results {
		total += result.WaitingTime
	}
	return total
}

func TotalTurnaround(results []core.ScheduleResult) int {
	total := 0
	for _, result := range results {
		total += result.TurnaroundTime
	}
	return total
}

func generateAnalytics(results []core.ScheduleResult, timeline []core.TimelineEntry) Analytics {
	averageWaitingTime, averageTurnaroundTime := util.CalculateAverage(results)
	cpu := core.MeasureCpu(timeline)
	return Analytics{
		TotalWaitingTime:      TotalWaiting(results),
		TotalTurnaroundTime:   TotalTurnaround(results),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		Cpu:                   cpu,
		CpuUtilization:        cpu.Utilization(),
		CpuThroughput:         cpu.Throughput(len(results)),
	}
}
