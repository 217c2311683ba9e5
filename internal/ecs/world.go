package ecs

import "sort"

// World is the central entity registry and component store.
//
// Destruction is deferred: DestroyEntity hides the entity from every lookup
// immediately, but its components are only dropped by Flush, which the
// Scheduler calls once at the end of each tick.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	pending    []EntityID
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and queues its components for removal.
// Calling it twice is harmless.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	w.pending = append(w.pending, id)
}

// Flush drops every entity destroyed since the previous Flush.
func (w *World) Flush() {
	for _, id := range w.pending {
		for _, store := range w.components {
			delete(store, id)
		}
		delete(w.alive, id)
	}
	w.pending = w.pending[:0]
}

// Pending returns the number of destroyed entities awaiting Flush.
func (w *World) Pending() int { return len(w.pending) }

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	n := 0
	for _, ok := range w.alive {
		if ok {
			n++
		}
	}
	return n
}

// Add attaches a component to an entity, replacing any component of the same
// type. Adding to a dead entity does nothing.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
// Dead entities have no components.
func (w *World) Get(id EntityID, t ComponentType) Component {
	if !w.alive[id] {
		return nil
	}
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Count returns how many alive entities carry a component of type t.
func (w *World) Count(t ComponentType) int {
	n := 0
	for id := range w.components[t] {
		if w.alive[id] {
			n++
		}
	}
	return n
}

// Query returns all alive entities that have every listed component type,
// sorted by ascending ID.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
