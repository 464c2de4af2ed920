package core

// CpuMetric summarises how a single cpu was used over a timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization returns the busy share of TotalTime, 0 for an empty timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// MeasureCpu derives cpu usage from a timeline. The timeline starts at time 0,
// so any gap before the first entry counts as idle time.
func MeasureCpu(timeline []TimelineEntry) CpuMetric {
	var metric CpuMetric
	for _, entry := range timeline {
		metric.UtilizationTime += entry.Duration
		if end := entry.End(); end > metric.TotalTime {
			metric.TotalTime = end
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
