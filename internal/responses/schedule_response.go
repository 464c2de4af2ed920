package responses

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/schedulers"
)

type ProcessResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BurstTime      int    `json:"burst_time"`
	ArrivalTime    int    `json:"arrival_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	CompletionTime int    `json:"completion_time"`
}

type TimelineResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Start    int    `json:"start"`
	Duration int    `json:"duration"`
}

type ScheduleResponse struct {
	Policy                string             `json:"policy"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	TotalWaitingTime      int                `json:"total_waiting_time"`
	TotalTurnAroundTime   int                `json:"total_turn_around_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []TimelineResponse `json:"timeline"`
}

type ProcessListResponse struct {
	Processes []core.Process `json:"processes"`
}

type AddProcessResponse struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
}

type SessionResponse struct {
	ID string `json:"id"`
}

// NewScheduleResponse flattens a run into its wire shape. Under non-preemptive
// scheduling a process first runs once its wait ends, so response time equals
// waiting time.
func NewScheduleResponse(run *schedulers.Run) ScheduleResponse {
	response := ScheduleResponse{
		Policy:                string(run.Policy),
		TotalTime:             run.Analytics.Cpu.TotalTime,
		IdleTime:              run.Analytics.Cpu.IdleTime,
		TotalWaitingTime:      run.Analytics.TotalWaitingTime,
		TotalTurnAroundTime:   run.Analytics.TotalTurnaroundTime,
		AverageWaitingTime:    run.Analytics.AverageWaitingTime,
		AverageResponseTime:   run.Analytics.AverageWaitingTime,
		AverageTurnAroundTime: run.Analytics.AverageTurnaroundTime,
		CpuUtilization:        run.Analytics.CpuUtilization,
		CpuThroughput:         run.Analytics.CpuThroughput,
		Details:               make([]ProcessResponse, 0, len(run.Results)),
		Timeline:              make([]TimelineResponse, 0, len(run.Timeline)),
	}
	for _, result := range run.Results {
		response.Details = append(response.Details, ProcessResponse{
			ID:             result.ID,
			Name:           result.Name,
			BurstTime:      result.BurstTime,
			ArrivalTime:    result.ArrivalTime,
			WaitingTime:    result.WaitingTime,
			TurnAroundTime: result.TurnaroundTime,
			CompletionTime: result.CompletionTime,
		})
	}
	for _, entry := range run.Timeline {
		response.Timeline = append(response.Timeline, TimelineResponse{
			ID:       entry.ID,
			Name:     entry.Name,
			Start:    entry.Start,
			Duration: entry.Duration,
		})
	}
	return response
}
