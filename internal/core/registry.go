package core

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"

	"cpu-scheduler-simulator/internal/idgen"
)

// Registry is an ordered collection of processes. Positional indexes are the
// primary identity; every record additionally carries an opaque ID assigned on Add.
// Registry is not safe for concurrent use, Simulator serialises access to it.
type Registry struct {
	list *arraylist.List
	ids  idgen.Sequence
}

func NewRegistry() *Registry {
	return &Registry{list: arraylist.New()}
}

func (r *Registry) Len() int {
	return r.list.Size()
}

// Add validates p and appends it, returning its index.
func (r *Registry) Add(p Process) (int, error) {
	if err := p.Validate(); err != nil {
		return -1, err
	}
	p.ID = r.ids.Next()
	r.list.Add(p)
	return r.list.Size() - 1, nil
}

func (r *Registry) Get(index int) (Process, error) {
	if err := r.checkIndex(index); err != nil {
		return Process{}, err
	}
	v, _ := r.list.Get(index)
	return v.(Process), nil
}

// Update replaces the process at index, keeping its ID.
func (r *Registry) Update(index int, p Process) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	prev, _ := r.list.Get(index)
	p.ID = prev.(Process).ID
	r.list.Set(index, p)
	return nil
}

// RemoveAt deletes the process at index; later processes shift down by one.
func (r *Registry) RemoveAt(index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.list.Remove(index)
	return nil
}

func (r *Registry) IndexOf(id string) (int, error) {
	it := r.list.Iterator()
	for it.Next() {
		if it.Value().(Process).ID == id {
			return it.Index(), nil
		}
	}
	return -1, &NotFoundError{ID: id}
}

func (r *Registry) UpdateByID(id string, p Process) error {
	index, err := r.IndexOf(id)
	if err != nil {
		return err
	}
	return r.Update(index, p)
}

func (r *Registry) RemoveByID(id string) error {
	index, err := r.IndexOf(id)
	if err != nil {
		return err
	}
	return r.RemoveAt(index)
}

func (r *Registry) Clear() {
	r.list.Clear()
}

// Snapshot returns a copy of the registered processes in their stored order.
func (r *Registry) Snapshot() []Process {
	values := r.list.Values()
	out := make([]Process, len(values))
	for i, v := range values {
		out[i] = v.(Process)
	}
	return out
}

// SortStable reorders the stored processes by less, keeping the relative
// order of equal elements.
func (r *Registry) SortStable(less func(a, b Process) bool) {
	processes := r.Snapshot()
	sort.SliceStable(processes, func(i, j int) bool {
		return less(processes[i], processes[j])
	})
	r.list.Clear()
	for _, p := range processes {
		r.list.Add(p)
	}
}

func (r *Registry) checkIndex(index int) error {
	if index < 0 || index >= r.list.Size() {
		return &IndexError{Index: index, Len: r.list.Size()}
	}
	return nil
}
