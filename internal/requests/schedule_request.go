package requests

type Job struct {
	Name        string `json:"name"`
	BurstTime   int    `json:"burst_time"`
	ArrivalTime int    `json:"arrival_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}
