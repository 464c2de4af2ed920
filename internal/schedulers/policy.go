package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler-simulator/internal/core"
)

type Policy string

const (
	PolicyFirstComeFirstServe          Policy = "fcfs"
	PolicyShortestJobFirst             Policy = "sjf"
	PolicyShortestJobFirstArrivalAware Policy = "sjf-arrival"
)

var Policies = []Policy{PolicyFirstComeFirstServe, PolicyShortestJobFirst, PolicyShortestJobFirstArrivalAware}

// ParsePolicy resolves a case-insensitive policy name.
func ParsePolicy(name string) (Policy, error) {
	policy := Policy(strings.ToLower(strings.TrimSpace(name)))
	for _, candidate := range Policies {
		if candidate == policy {
			return policy, nil
		}
	}
	return "", fmt.Errorf("unsupported policy %q", name)
}

// Schedule runs policy over processes without touching any registry.
func Schedule(policy Policy, processes []core.Process) ([]core.ScheduleResult, []core.TimelineEntry, error) {
	switch policy {
	case PolicyFirstComeFirstServe:
		results, timeline := ScheduleFirstComeFirstServe(processes)
		return results, timeline, nil
	case PolicyShortestJobFirst:
		results, timeline := ScheduleShortestJobFirst(processes)
		return results, timeline, nil
	case PolicyShortestJobFirstArrivalAware:
		results, timeline := ScheduleShortestJobFirstArrivalAware(processes)
		return results, timeline, nil
	}
	return nil, nil, fmt.Errorf("unsupported policy %q", policy)
}
