package core

import (
	"math"
	"strings"
)

// MaxTime bounds burst and arrival times so simulated clocks cannot overflow.
const MaxTime = math.MaxInt32

// Process is a single process descriptor held by the Registry.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
}

func NewProcess(name string, burstTime, arrivalTime int) Process {
	return Process{Name: name, BurstTime: burstTime, ArrivalTime: arrivalTime}
}

// Validate reports the first field that cannot enter the registry.
func (p Process) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if p.BurstTime < 0 || p.BurstTime > MaxTime {
		return &ValidationError{Field: "burst_time", Value: p.BurstTime}
	}
	if p.ArrivalTime < 0 || p.ArrivalTime > MaxTime {
		return &ValidationError{Field: "arrival_time", Value: p.ArrivalTime}
	}
	return nil
}

// ScheduleResult holds per-process metrics produced by a scheduling run.
type ScheduleResult struct {
	ID             string
	Name           string
	BurstTime      int
	ArrivalTime    int
	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
}

// TimelineEntry is one bar of the gantt timeline.
type TimelineEntry struct {
	ID       string
	Name     string
	Start    int
	Duration int
}

func (e TimelineEntry) End() int {
	return e.Start + e.Duration
}
