package schema

import (
	"fmt"
	"sort"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
)

type AttributeType string

const (
	String  AttributeType = "string"
	Number  AttributeType = "number"
	Integer AttributeType = "integer"
	Boolean AttributeType = "boolean"
	Time    AttributeType = "time"
	Any     AttributeType = "any"
)

type Attribute struct {
	Name string        `yaml:"name"`
	Type AttributeType `yaml:"type"`
}

type Relationship struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	ToMany bool   `yaml:"toMany"`
}

// TypeDescriptor declares a JSON:API type together with its attribute and relationship
// schema. Declaration order is significant for dirty tracking.
type TypeDescriptor struct {
	Name          string         `yaml:"type"`
	Attributes    []Attribute    `yaml:"attributes"`
	Relationships []Relationship `yaml:"relationships"`
}

func (td *TypeDescriptor) Attribute(name string) (Attribute, bool) {
	for _, a := range td.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

func (td *TypeDescriptor) Relationship(name string) (Relationship, bool) {
	for _, r := range td.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

func (td *TypeDescriptor) validate() error {
	if td.Name == "" {
		return fmt.Errorf("type descriptor without a name")
	}

	seen := map[string]bool{}

	for _, a := range td.Attributes {
		if a.Name == "" {
			return fmt.Errorf("type %s declares an attribute without a name", td.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("type %s declares %q more than once", td.Name, a.Name)
		}
		seen[a.Name] = true
	}

	for _, r := range td.Relationships {
		if r.Name == "" {
			return fmt.Errorf("type %s declares a relationship without a name", td.Name)
		}
		if seen[r.Name] {
			return fmt.Errorf("type %s declares %q more than once", td.Name, r.Name)
		}
		seen[r.Name] = true
	}

	return nil
}

// Registry maps JSON:API type names to their descriptors
type Registry struct {
	types map[string]*TypeDescriptor
}

func NewRegistry(descriptors ...*TypeDescriptor) (*Registry, error) {
	r := &Registry{
		types: map[string]*TypeDescriptor{},
	}

	for _, td := range descriptors {
		if err := r.Register(td); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) Register(td *TypeDescriptor) error {
	if td == nil {
		return fmt.Errorf("cannot register a nil type descriptor")
	}

	if err := td.validate(); err != nil {
		return err
	}

	if _, ok := r.types[td.Name]; ok {
		return jsonapierrors.NewAlreadyRegisteredError(td.Name)
	}

	r.types[td.Name] = td
	return nil
}

func (r *Registry) Lookup(typeName string) (*TypeDescriptor, bool) {
	td, ok := r.types[typeName]
	return td, ok
}

func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
