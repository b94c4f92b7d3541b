package parser

import (
	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
)

// merge copies the id, attributes and meta of a wire resource into target, or into a
// new entity when target is nil. Extensions and relationships of the target are left
// alone. The merged entity is settled as persisted once it carries an id.
func (in *ingestion) merge(target *entities.Entity, resource *jsonapi.Resource) (*entities.Entity, error) {
	if target == nil {
		td, ok := in.types.Lookup(resource.Type)
		if !ok {
			return nil, jsonapierrors.NewUnknownTypeError(resource.Type)
		}

		var err error
		target, err = entities.New(td)
		if err != nil {
			return nil, err
		}
	}

	if resource.ID != "" {
		target.SetID(resource.ID)
	}

	td := target.Descriptor()

	for wireKey, raw := range resource.Attributes {
		name := in.keys(wireKey)

		attr, ok := td.Attribute(name)
		if !ok {
			continue
		}

		value, err := in.cast(attr, raw)
		if err != nil {
			in.logger.Debug("attribute value could not be cast, keeping previous value",
				"type", td.Name, "id", resource.ID, "attribute", name, "err", err.Error())
			continue
		}

		if err = target.Set(name, value); err != nil {
			return nil, err
		}
	}

	if resource.Meta != nil {
		target.SetMeta(copyMeta(resource.Meta))
	}

	if target.ID() != "" {
		target.SetPersisted(true)
	}

	return target, nil
}
