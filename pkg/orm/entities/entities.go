package entities

import (
	"fmt"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/google/uuid"
)

type EntityDecoratorFunc func(e *Entity)

// New creates an entity of the type described by td. Decorators are applied in order and
// an entity decorated with Persisted takes its change tracking snapshot last.
func New(td *schema.TypeDescriptor, decorators ...EntityDecoratorFunc) (*Entity, error) {
	if td == nil {
		return nil, fmt.Errorf("cannot create an entity without a type descriptor")
	}

	e := &Entity{
		descriptor:    td,
		attributes:    map[string]any{},
		original:      map[string]any{},
		relationships: map[string]any{},
		extensions:    map[string]any{},
	}

	for _, r := range td.Relationships {
		if r.ToMany {
			e.relationships[r.Name] = []*Entity{}
		} else {
			e.relationships[r.Name] = (*Entity)(nil)
		}
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	if e.persisted {
		e.snapshot()
	}

	return e, nil
}

// Entity is an in-memory instance of a JSON:API resource type. Attribute values are
// restricted to the attributes declared by the type, while callers can attach
// arbitrary data through extensions.
type Entity struct {
	descriptor  *schema.TypeDescriptor
	id          string
	temporaryID string

	attributes    map[string]any
	original      map[string]any
	relationships map[string]any
	meta          map[string]any
	extensions    map[string]any

	persisted    bool
	destroy      bool
	disassociate bool
}

func (e *Entity) Type() string {
	return e.descriptor.Name
}

// ID is empty until the entity has been persisted for the first time
func (e *Entity) ID() string {
	return e.id
}

func (e *Entity) SetID(id string) {
	e.id = id
}

// TemporaryID returns a generated identifier that stays stable for the lifetime of the
// instance. It lets callers reference entities that have no id yet.
func (e *Entity) TemporaryID() string {
	if e.temporaryID == "" {
		e.temporaryID = uuid.NewString()
	}
	return e.temporaryID
}

func (e *Entity) Descriptor() *schema.TypeDescriptor {
	return e.descriptor
}

func (e *Entity) Get(name string) (any, bool) {
	v, ok := e.attributes[name]
	return v, ok
}

func (e *Entity) Set(name string, value any) error {
	if _, ok := e.descriptor.Attribute(name); !ok {
		return jsonapierrors.NewUnknownAttributeError(e.Type(), name)
	}
	e.attributes[name] = value
	return nil
}

func (e *Entity) Attributes() map[string]any {
	return copyMap(e.attributes)
}

func (e *Entity) HasRelationship(name string) bool {
	_, ok := e.descriptor.Relationship(name)
	return ok
}

// One returns the target of a to-one relationship, or nil
func (e *Entity) One(name string) *Entity {
	one, _ := e.relationships[name].(*Entity)
	return one
}

// Many returns the members of a to-many relationship. The returned slice must not be
// modified, use SetMany or Append instead.
func (e *Entity) Many(name string) []*Entity {
	many, _ := e.relationships[name].([]*Entity)
	return many
}

func (e *Entity) SetOne(name string, target *Entity) error {
	r, ok := e.descriptor.Relationship(name)
	if !ok || r.ToMany {
		return jsonapierrors.NewUnknownRelationshipError(e.Type(), name)
	}
	e.relationships[name] = target
	return nil
}

func (e *Entity) SetMany(name string, members ...*Entity) error {
	r, ok := e.descriptor.Relationship(name)
	if !ok || !r.ToMany {
		return jsonapierrors.NewUnknownRelationshipError(e.Type(), name)
	}

	many := make([]*Entity, 0, len(members))
	for _, m := range members {
		if m != nil {
			many = append(many, m)
		}
	}

	e.relationships[name] = many
	return nil
}

func (e *Entity) Append(name string, member *Entity) error {
	r, ok := e.descriptor.Relationship(name)
	if !ok || !r.ToMany {
		return jsonapierrors.NewUnknownRelationshipError(e.Type(), name)
	}
	if member != nil {
		e.relationships[name] = append(e.Many(name), member)
	}
	return nil
}

func (e *Entity) Meta() map[string]any {
	return e.meta
}

func (e *Entity) SetMeta(meta map[string]any) {
	e.meta = meta
}

// Extension returns data attached to the entity by the caller. Extensions are never
// touched when the entity is merged with a document.
func (e *Entity) Extension(key string) (any, bool) {
	v, ok := e.extensions[key]
	return v, ok
}

func (e *Entity) SetExtension(key string, value any) {
	e.extensions[key] = value
}

func (e *Entity) DeleteExtension(key string) {
	delete(e.extensions, key)
}

func (e *Entity) IsPersisted() bool {
	return e.persisted
}

// SetPersisted records whether the entity is known to exist on the server. Marking it as
// persisted settles the current attribute values as the new original snapshot.
func (e *Entity) SetPersisted(persisted bool) {
	e.persisted = persisted
	if persisted {
		e.snapshot()
	}
}

func (e *Entity) MarkForDestruction() {
	e.destroy = true
}

func (e *Entity) MarkForDisassociation() {
	e.disassociate = true
}

func (e *Entity) IsMarkedForDestruction() bool {
	return e.destroy
}

func (e *Entity) IsMarkedForDisassociation() bool {
	return e.disassociate
}

func (e *Entity) ClearMarks() {
	e.destroy = false
	e.disassociate = false
}

func (e *Entity) isMarked() bool {
	return e.destroy || e.disassociate
}

// Rollback restores the attribute values of the last snapshot
func (e *Entity) Rollback() {
	e.attributes = copyMap(e.original)
}

func (e *Entity) snapshot() {
	e.original = copyMap(e.attributes)
}

func (e *Entity) String() string {
	if e.id == "" {
		return e.Type() + "/(new)"
	}
	return e.Type() + "/" + e.id
}

func copyMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
