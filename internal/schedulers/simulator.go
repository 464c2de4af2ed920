package schedulers

import (
	"fmt"
	"log"
	"sync"

	"cpu-scheduler-simulator/internal/core"
)

// Options configures a Simulator.
type Options struct {
	// ReorderOnFCFS makes RunFCFS store the arrival-sorted order back into the registry.
	ReorderOnFCFS bool
}

// DefaultOptions keeps the registry reordering behaviour of FCFS runs.
func DefaultOptions() Options {
	return Options{ReorderOnFCFS: true}
}

// Run is the outcome of one scheduling pass.
type Run struct {
	Policy    Policy
	Results   []core.ScheduleResult
	Timeline  []core.TimelineEntry
	Analytics Analytics
}

// Simulator owns one process registry and schedules its contents. All methods
// are serialised by a single mutex so a mutation never interleaves with a run.
type Simulator struct {
	mu       sync.Mutex
	registry *core.Registry
	options  Options
}

func NewSimulator(options Options) *Simulator {
	return &Simulator{registry: core.NewRegistry(), options: options}
}

func (s *Simulator) Add(name string, burstTime, arrivalTime int) (int, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, err := s.registry.Add(core.NewProcess(name, burstTime, arrivalTime))
	if err != nil {
		return -1, "", err
	}
	p, _ := s.registry.Get(index)
	return index, p.ID, nil
}

func (s *Simulator) Update(index int, name string, burstTime, arrivalTime int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Update(index, core.NewProcess(name, burstTime, arrivalTime))
}

func (s *Simulator) UpdateByID(id string, name string, burstTime, arrivalTime int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.UpdateByID(id, core.NewProcess(name, burstTime, arrivalTime))
}

func (s *Simulator) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.RemoveAt(index)
}

func (s *Simulator) RemoveByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.RemoveByID(id)
}

func (s *Simulator) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Clear()
}

func (s *Simulator) Snapshot() []core.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Snapshot()
}

// RunFCFS schedules first come first serve using the configured reorder option.
func (s *Simulator) RunFCFS() ([]core.ScheduleResult, []core.TimelineEntry) {
	return s.RunFCFSWith(s.options.ReorderOnFCFS)
}

// RunFCFSWith schedules first come first serve. When reorder is set the
// arrival-sorted order becomes the registry's stored order.
func (s *Simulator) RunFCFSWith(reorder bool) ([]core.ScheduleResult, []core.TimelineEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Println("running fcfs algorithm ...")
	results, timeline := ScheduleFirstComeFirstServe(s.registry.Snapshot())
	if reorder {
		s.registry.SortStable(ByArrival)
	}
	return results, timeline
}

// RunSJF schedules shortest job first. The registry order is never changed.
func (s *Simulator) RunSJF() ([]core.ScheduleResult, []core.TimelineEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Println("running sjf algorithm ...")
	return ScheduleShortestJobFirst(s.registry.Snapshot())
}

// RunSJFArrivalAware schedules arrival-aware shortest job first.
func (s *Simulator) RunSJFArrivalAware() ([]core.ScheduleResult, []core.TimelineEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Println("running arrival aware sjf algorithm ...")
	return ScheduleShortestJobFirstArrivalAware(s.registry.Snapshot())
}

// Run schedules with policy and aggregates the outcome.
func (s *Simulator) Run(policy Policy) (*Run, error) {
	return s.RunWithReorder(policy, s.options.ReorderOnFCFS)
}

// RunWithReorder is Run with an explicit FCFS reorder choice. reorder is
// ignored by the other policies.
func (s *Simulator) RunWithReorder(policy Policy, reorder bool) (*Run, error) {
	var results []core.ScheduleResult
	var timeline []core.TimelineEntry
	switch policy {
	case PolicyFirstComeFirstServe:
		results, timeline = s.RunFCFSWith(reorder)
	case PolicyShortestJobFirst:
		results, timeline = s.RunSJF()
	case PolicyShortestJobFirstArrivalAware:
		results, timeline = s.RunSJFArrivalAware()
	default:
		return nil, fmt.Errorf("unsupported policy %q", policy)
	}
	return &Run{
		Policy:    policy,
		Results:   results,
		Timeline:  timeline,
		Analytics: generateAnalytics(results, timeline),
	}, nil
}
