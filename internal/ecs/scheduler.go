package ecs

import "sort"

type scheduled struct {
	sys      System
	priority int
	seq      int
}

// Scheduler runs registered systems once per tick in ascending priority.
// Systems sharing a priority run in registration order.
type Scheduler struct {
	systems []scheduled
	seq     int
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Register adds sys to the schedule at the given priority.
func (s *Scheduler) Register(sys System, priority int) {
	s.systems = append(s.systems, scheduled{sys: sys, priority: priority, seq: s.seq})
	s.seq++
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].priority < s.systems[j].priority
	})
}

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	out := make([]System, len(s.systems))
	for i, e := range s.systems {
		out[i] = e.sys
	}
	return out
}

// Tick runs every system once with the same dt, then flushes destroyed
// entities from w.
func (s *Scheduler) Tick(w *World, dt float64) {
	for _, e := range s.systems {
		e.sys.Update(w, dt)
	}
	w.Flush()
}
