package parser

import (
	"errors"

	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
)

// ingest merges resource into target and resolves its relationships. The merged entity
// is registered before any relationship is resolved so that cycles end at the
// partially built instance.
func (in *ingestion) ingest(target *entities.Entity, resource *jsonapi.Resource) (*entities.Entity, error) {
	e, err := in.merge(target, resource)
	if err != nil {
		return nil, err
	}

	in.registry.register(e)

	err = in.resolveRelationships(e, resource)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (in *ingestion) resolveRelationships(e *entities.Entity, resource *jsonapi.Resource) error {
	if len(resource.Relationships) == 0 {
		return nil
	}

	members := make(map[string]jsonapi.RelationshipMember, len(resource.Relationships))
	for wireName, member := range resource.Relationships {
		members[in.keys(wireName)] = member
	}

	for _, r := range e.Descriptor().Relationships {
		member, ok := members[r.Name]
		if !ok || !member.HasData() {
			continue
		}

		var err error
		if r.ToMany {
			err = in.resolveToMany(e, r, member)
		} else {
			err = in.resolveToOne(e, r, member)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (in *ingestion) resolveToOne(e *entities.Entity, r schema.Relationship, member jsonapi.RelationshipMember) error {
	var identifier *jsonapi.ResourceIdentifier

	switch member.Kind {
	case jsonapi.DataOne:
		identifier = member.One
	case jsonapi.DataMany:
		// a list given for a to-one relationship resolves to its first member
		if len(member.Many) > 0 {
			identifier = &member.Many[0]
		}
	}

	if identifier == nil {
		return e.SetOne(r.Name, nil)
	}

	target, err := in.resolve(identifier, []*entities.Entity{e.One(r.Name)})
	if err != nil {
		return err
	}

	return e.SetOne(r.Name, target)
}

func (in *ingestion) resolveToMany(e *entities.Entity, r schema.Relationship, member jsonapi.RelationshipMember) error {
	var identifiers []jsonapi.ResourceIdentifier

	switch member.Kind {
	case jsonapi.DataOne:
		identifiers = []jsonapi.ResourceIdentifier{*member.One}
	case jsonapi.DataMany:
		identifiers = member.Many
	}

	existing := e.Many(r.Name)
	resolved := make([]*entities.Entity, 0, len(identifiers))

	for idx := range identifiers {
		target, err := in.resolve(&identifiers[idx], existing)
		if err != nil {
			return err
		}

		if target != nil {
			resolved = append(resolved, target)
		}
	}

	return e.SetMany(r.Name, resolved...)
}

// resolve finds the entity for a resource identifier. Entities already handled during
// this parse are reused, otherwise the full resource is taken from the document and
// merged into the matching instance among candidates, or into a new one. A nil entity
// without an error means the identifier could not be resolved and should be left out.
func (in *ingestion) resolve(ri *jsonapi.ResourceIdentifier, candidates []*entities.Entity) (*entities.Entity, error) {
	id := ri.Identity()

	if id.ID == "" {
		in.logger.Debug("ignoring resource identifier without an id", "type", id.Type)
		return nil, nil
	}

	if e := in.registry.lookup(id); e != nil {
		return e, nil
	}

	resource, ok := in.pool[id]
	if !ok {
		in.logger.Debug("resource identifier not found in document", "type", id.Type, "id", id.ID)
		return nil, nil
	}

	var target *entities.Entity
	for _, c := range candidates {
		if c != nil && c.Type() == id.Type && c.ID() == id.ID {
			target = c
			break
		}
	}

	e, err := in.ingest(target, resource)
	if err != nil {
		if errors.Is(err, jsonapierrors.ErrUnknownType) {
			in.logger.Debug("dropping resource of unknown type", "type", id.Type, "id", id.ID)
			return nil, nil
		}
		return nil, err
	}

	return e, nil
}
