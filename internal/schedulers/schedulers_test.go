package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"cpu-scheduler-simulator/internal/core"
)

func threeProcesses() []core.Process {
	return []core.Process{
		{ID: "1", Name: "P1", BurstTime: 5, ArrivalTime: 0},
		{ID: "2", Name: "P2", BurstTime: 3, ArrivalTime: 1},
		{ID: "3", Name: "P3", BurstTime: 8, ArrivalTime: 2},
	}
}

type metric struct {
	Name           string
	WaitingTime    int
	TurnaroundTime int
}

func metrics(results []core.ScheduleResult) []metric {
	out := make([]metric, len(results))
	for i, r := range results {
		out[i] = metric{Name: r.Name, WaitingTime: r.WaitingTime, TurnaroundTime: r.TurnaroundTime}
	}
	return out
}

func starts(timeline []core.TimelineEntry) []int {
	out := make([]int, len(timeline))
	for i, e := range timeline {
		out[i] = e.Start
	}
	return out
}

func TestScheduleFirstComeFirstServe(t *testing.T) {
	var testCases = []struct {
		description string
		processes   []core.Process
		expect      []metric
		starts      []int
		waiting     int
		turnaround  int
	}{
		{
			description: "staggered arrivals",
			processes:   threeProcesses(),
			expect: []metric{
				{Name: "P1", WaitingTime: 0, TurnaroundTime: 5},
				{Name: "P2", WaitingTime: 4, TurnaroundTime: 7},
				{Name: "P3", WaitingTime: 6, TurnaroundTime: 14},
			},
			starts:     []int{0, 5, 8},
			waiting:    10,
			turnaround: 26,
		},
		{
			description: "stable tie break on arrival",
			processes: []core.Process{
				{Name: "A", BurstTime: 1, ArrivalTime: 5},
				{Name: "B", BurstTime: 2, ArrivalTime: 2},
				{Name: "C", BurstTime: 3, ArrivalTime: 2},
			},
			expect: []metric{
				{Name: "B", WaitingTime: 0, TurnaroundTime: 2},
				{Name: "C", WaitingTime: 2, TurnaroundTime: 5},
				{Name: "A", WaitingTime: 2, TurnaroundTime: 3},
			},
			starts:     []int{2, 4, 7},
			waiting:    4,
			turnaround: 10,
		},
		{
			description: "idle cpu until late arrival",
			processes: []core.Process{
				{Name: "A", BurstTime: 2, ArrivalTime: 0},
				{Name: "B", BurstTime: 2, ArrivalTime: 10},
			},
			expect: []metric{
				{Name: "A", WaitingTime: 0, TurnaroundTime: 2},
				{Name: "B", WaitingTime: 0, TurnaroundTime: 2},
			},
			starts:     []int{0, 10},
			waiting:    0,
			turnaround: 4,
		},
	}

	for _, testCase := range testCases {
		input := append([]core.Process(nil), testCase.processes...)
		results, timeline := ScheduleFirstComeFirstServe(input)
		if diff := cmp.Diff(testCase.expect, metrics(results)); diff != "" {
			t.Errorf("%s: results mismatch (-want +got):\n%s", testCase.description, diff)
		}
		assert.Equal(t, testCase.starts, starts(timeline), testCase.description)
		assert.Equal(t, testCase.waiting, TotalWaiting(results), testCase.description)
		assert.Equal(t, testCase.turnaround, TotalTurnaround(results), testCase.description)
		assert.Equal(t, testCase.processes, input, testCase.description)
	}
}

func TestScheduleShortestJobFirst(t *testing.T) {
	results, timeline := ScheduleShortestJobFirst(threeProcesses())
	expect := []metric{
		{Name: "P2", WaitingTime: 0, TurnaroundTime: 3},
		{Name: "P1", WaitingTime: 3, TurnaroundTime: 8},
		{Name: "P3", WaitingTime: 8, TurnaroundTime: 16},
	}
	if diff := cmp.Diff(expect, metrics(results)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 3, 8}, starts(timeline))
	assert.Equal(t, 11, TotalWaiting(results))
	assert.Equal(t, 27, TotalTurnaround(results))

	// equal bursts keep input order, arrivals are not consulted
	results, _ = ScheduleShortestJobFirst([]core.Process{
		{Name: "late", BurstTime: 2, ArrivalTime: 100},
		{Name: "early", BurstTime: 2, ArrivalTime: 0},
	})
	assert.Equal(t, []metric{
		{Name: "late", WaitingTime: 0, TurnaroundTime: 2},
		{Name: "early", WaitingTime: 2, TurnaroundTime: 4},
	}, metrics(results))
}

func TestScheduleShortestJobFirstArrivalAware(t *testing.T) {
	results, timeline := ScheduleShortestJobFirstArrivalAware(threeProcesses())
	assert.Equal(t, []metric{
		{Name: "P1", WaitingTime: 0, TurnaroundTime: 5},
		{Name: "P2", WaitingTime: 4, TurnaroundTime: 7},
		{Name: "P3", WaitingTime: 6, TurnaroundTime: 14},
	}, metrics(results))
	assert.Equal(t, []int{0, 5, 8}, starts(timeline))

	results, timeline = ScheduleShortestJobFirstArrivalAware([]core.Process{
		{Name: "A", BurstTime: 4, ArrivalTime: 0},
		{Name: "B", BurstTime: 2, ArrivalTime: 10},
		{Name: "C", BurstTime: 1, ArrivalTime: 10},
	})
	assert.Equal(t, []metric{
		{Name: "A", WaitingTime: 0, TurnaroundTime: 4},
		{Name: "C", WaitingTime: 0, TurnaroundTime: 1},
		{Name: "B", WaitingTime: 1, TurnaroundTime: 3},
	}, metrics(results))
	assert.Equal(t, []int{0, 10, 11}, starts(timeline))
	assert.Equal(t, core.CpuMetric{TotalTime: 13, UtilizationTime: 7, IdleTime: 6}, core.MeasureCpu(timeline))
}

func TestTurnaroundIdentity(t *testing.T) {
	processes := []core.Process{
		{Name: "a", BurstTime: 7, ArrivalTime: 3},
		{Name: "b", BurstTime: 0, ArrivalTime: 0},
		{Name: "c", BurstTime: 4, ArrivalTime: 9},
		{Name: "d", BurstTime: 2, ArrivalTime: 3},
		{Name: "e", BurstTime: 11, ArrivalTime: 1},
	}
	for _, policy := range Policies {
		results, timeline, err := Schedule(policy, processes)
		assert.NoError(t, err)
		assert.Len(t, results, len(processes))
		for i, result := range results {
			assert.Equal(t, result.WaitingTime+result.BurstTime, result.TurnaroundTime, policy)
			assert.GreaterOrEqual(t, result.WaitingTime, 0, policy)
			assert.Equal(t, result.BurstTime, timeline[i].Duration, policy)
			assert.Equal(t, result.Name, timeline[i].Name, policy)
		}
	}
}

func TestSchedule_Empty(t *testing.T) {
	for _, policy := range Policies {
		results, timeline, err := Schedule(policy, nil)
		assert.NoError(t, err)
		assert.Empty(t, results, policy)
		assert.Empty(t, timeline, policy)
		assert.Equal(t, 0, TotalWaiting(results))
		assert.Equal(t, 0, TotalTurnaround(results))
	}
}

func TestParsePolicy(t *testing.T) {
	var testCases = []struct {
		input  string
		expect Policy
		hasErr bool
	}{
		{input: "fcfs", expect: PolicyFirstComeFirstServe},
		{input: " SJF ", expect: PolicyShortestJobFirst},
		{input: "sjf-arrival", expect: PolicyShortestJobFirstArrivalAware},
		{input: "rr", hasErr: true},
	}
	for _, testCase := range testCases {
		policy, err := ParsePolicy(testCase.input)
		if testCase.hasErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		assert.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.expect, policy, testCase.input)
	}
}

func TestSchedule_LargeTimesStayPositive(t *testing.T) {
	processes := []core.Process{
		{Name: "a", BurstTime: core.MaxTime, ArrivalTime: core.MaxTime},
		{Name: "b", BurstTime: core.MaxTime, ArrivalTime: core.MaxTime},
		{Name: "c", BurstTime: core.MaxTime, ArrivalTime: 0},
	}
	for _, p := range processes {
		assert.NoError(t, p.Validate())
	}
	for _, policy := range Policies {
		results, timeline, err := Schedule(policy, processes)
		assert.NoError(t, err)
		for i, result := range results {
			assert.GreaterOrEqual(t, result.WaitingTime, 0, policy)
			assert.Greater(t, result.TurnaroundTime, 0, policy)
			assert.Greater(t, result.CompletionTime, 0, policy)
			assert.Greater(t, timeline[i].End(), 0, policy)
		}
	}
}
