package parser

import (
	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
)

// entityRegistry is the identity map of a single parse call. Every entity created or
// merged for an identified resource is registered here, so that all references to the
// same (type, id) end up holding the same instance.
type entityRegistry struct {
	entities map[jsonapi.Identity]*entities.Entity
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		entities: map[jsonapi.Identity]*entities.Entity{},
	}
}

// register is a no-op for entities without an id
func (r *entityRegistry) register(e *entities.Entity) {
	if e.ID() == "" {
		return
	}
	r.entities[jsonapi.Identity{Type: e.Type(), ID: e.ID()}] = e
}

func (r *entityRegistry) lookup(id jsonapi.Identity) *entities.Entity {
	if id.ID == "" {
		return nil
	}
	return r.entities[id]
}
