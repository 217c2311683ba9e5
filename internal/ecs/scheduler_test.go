package ecs

import "testing"

func TestSchedulerRunsInPriorityOrder(t *testing.T) {
	var order []string
	rec := func(name string) System {
		return SystemFunc(func(*World, float64) { order = append(order, name) })
	}
	s := NewScheduler()
	s.Register(rec("collision"), 60)
	s.Register(rec("input"), 10)
	s.Register(rec("movement-a"), 40)
	s.Register(rec("movement-b"), 40)
	s.Register(rec("cleanup"), 90)

	s.Tick(NewWorld(), 1.0/60)

	want := []string{"input", "movement-a", "movement-b", "collision", "cleanup"}
	if len(order) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q (full: %v)", i, order[i], want[i], order)
		}
	}
	if len(s.Systems()) != len(want) {
		t.Fatalf("Systems() returned %d entries", len(s.Systems()))
	}
}

func TestSchedulerPassesSameDt(t *testing.T) {
	var seen []float64
	s := NewScheduler()
	for p := 0; p < 3; p++ {
		s.Register(SystemFunc(func(_ *World, dt float64) { seen = append(seen, dt) }), p)
	}
	s.Tick(NewWorld(), 0.25)
	for i, dt := range seen {
		if dt != 0.25 {
			t.Fatalf("system %d got dt=%v", i, dt)
		}
	}
}

func TestSchedulerFlushesAfterAllSystems(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})

	sawPending := false
	s := NewScheduler()
	s.Register(SystemFunc(func(w *World, _ float64) { w.DestroyEntity(id) }), 10)
	s.Register(SystemFunc(func(w *World, _ float64) {
		sawPending = w.Pending() == 1
		if len(w.Query(ComponentType(1))) != 0 {
			t.Error("destroyed entity visible to a later system")
		}
	}), 20)
	s.Tick(w, 0.1)

	if !sawPending {
		t.Fatal("removal should still be queued while systems run")
	}
	if w.Pending() != 0 {
		t.Fatal("Tick should flush pending removals")
	}
}
