package entities

import (
	"reflect"
	"time"

	"github.com/diwise/jsonapi-orm/pkg/orm/include"
)

type Change struct {
	From any
	To   any
}

// Changes reports every attribute whose current value differs from the original snapshot.
// For an entity that was never persisted the origin of every non-nil value is nil.
func (e *Entity) Changes() map[string]Change {
	changes := map[string]Change{}

	for _, attr := range e.descriptor.Attributes {
		current := e.attributes[attr.Name]

		if !e.persisted {
			if current != nil {
				changes[attr.Name] = Change{From: nil, To: current}
			}
			continue
		}

		original := e.original[attr.Name]
		if !equalValues(original, current) {
			changes[attr.Name] = Change{From: original, To: current}
		}
	}

	return changes
}

// IsDirty reports whether the entity, or any entity reachable through the given dotted
// relationship paths, differs from its persisted state. Relationships that are not named
// are never inspected.
func (e *Entity) IsDirty(paths ...string) bool {
	return e.IsDirtyWithin(include.Paths(paths...))
}

func (e *Entity) IsDirtyWithin(d include.Directive) bool {
	if e.isSelfDirty() {
		return true
	}

	for _, r := range e.descriptor.Relationships {
		if !d.Has(r.Name) {
			continue
		}

		sub := d.Sub(r.Name)

		if r.ToMany {
			for _, member := range e.Many(r.Name) {
				if member.IsDirtyWithin(sub) {
					return true
				}
			}
			continue
		}

		if one := e.One(r.Name); one != nil && one.IsDirtyWithin(sub) {
			return true
		}
	}

	return false
}

func (e *Entity) isSelfDirty() bool {
	if !e.persisted || e.isMarked() {
		return true
	}

	for _, attr := range e.descriptor.Attributes {
		if !equalValues(e.original[attr.Name], e.attributes[attr.Name]) {
			return true
		}
	}

	return false
}

func equalValues(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}
