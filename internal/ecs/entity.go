package ecs

// EntityID uniquely identifies an entity in the world. IDs are never reused.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// System is one update pass over the world.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World, dt float64)

// Update calls f(w, dt).
func (f SystemFunc) Update(w *World, dt float64) { f(w, dt) }
