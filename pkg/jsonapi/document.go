package jsonapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
)

const ContentType string = "application/vnd.api+json"

// Identity is the (type, id) pair that identifies a resource on the wire
type Identity struct {
	Type string
	ID   string
}

func (i Identity) String() string {
	return i.Type + "/" + i.ID
}

// ResourceIdentifier is a relationship stub without attributes
type ResourceIdentifier struct {
	Type string         `json:"type"`
	ID   string         `json:"id"`
	Meta map[string]any `json:"meta,omitempty"`
}

func (ri ResourceIdentifier) Identity() Identity {
	return Identity{Type: ri.Type, ID: ri.ID}
}

type DataKind int

const (
	DataAbsent DataKind = iota
	DataNull
	DataOne
	DataMany
)

// RelationshipMember is the value of a single key in a resource's relationships object.
// Kind separates a member without a data key from one with explicitly empty data.
type RelationshipMember struct {
	Kind DataKind
	One  *ResourceIdentifier
	Many []ResourceIdentifier
	Meta map[string]any
}

func (rm RelationshipMember) HasData() bool {
	return rm.Kind != DataAbsent
}

func (rm *RelationshipMember) UnmarshalJSON(data []byte) error {
	var contents map[string]json.RawMessage

	err := json.Unmarshal(data, &contents)
	if err != nil {
		return jsonapierrors.NewMalformedDocumentError("relationship member must be an object")
	}

	*rm = RelationshipMember{Kind: DataAbsent}

	if m, ok := contents["meta"]; ok {
		if err = json.Unmarshal(m, &rm.Meta); err != nil {
			return jsonapierrors.NewMalformedDocumentError("relationship meta must be an object")
		}
	}

	raw, ok := contents["data"]
	if !ok {
		return nil
	}

	raw = bytes.TrimSpace(raw)

	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		rm.Kind = DataNull
	case raw[0] == '{':
		ri := &ResourceIdentifier{}
		if err = json.Unmarshal(raw, ri); err != nil {
			return jsonapierrors.NewMalformedDocumentError(fmt.Sprintf("invalid resource identifier: %s", err.Error()))
		}
		if ri.Type == "" {
			return jsonapierrors.NewMalformedDocumentError("resource identifier without a type")
		}
		rm.Kind = DataOne
		rm.One = ri
	case raw[0] == '[':
		identifiers := []ResourceIdentifier{}
		if err = json.Unmarshal(raw, &identifiers); err != nil {
			return jsonapierrors.NewMalformedDocumentError(fmt.Sprintf("invalid resource identifier list: %s", err.Error()))
		}
		for idx := range identifiers {
			if identifiers[idx].Type == "" {
				return jsonapierrors.NewMalformedDocumentError("resource identifier without a type")
			}
		}
		rm.Kind = DataMany
		rm.Many = identifiers
	default:
		return jsonapierrors.NewMalformedDocumentError(
			fmt.Sprintf("relationship data must be null, an object or an array, not %s", string(raw)),
		)
	}

	return nil
}

// Resource is a full resource object as found in primary data or the included pool
type Resource struct {
	Type          string                        `json:"type"`
	ID            string                        `json:"id,omitempty"`
	Attributes    map[string]any                `json:"attributes,omitempty"`
	Relationships map[string]RelationshipMember `json:"relationships,omitempty"`
	Meta          map[string]any                `json:"meta,omitempty"`
}

func (r Resource) Identity() Identity {
	return Identity{Type: r.Type, ID: r.ID}
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	type resourceAlias Resource
	alias := resourceAlias{}

	err := json.Unmarshal(data, &alias)
	if err != nil {
		if errors.Is(err, jsonapierrors.ErrMalformedDocument) {
			return err
		}
		return jsonapierrors.NewMalformedDocumentError(fmt.Sprintf("invalid resource object: %s", err.Error()))
	}

	if alias.Type == "" {
		return jsonapierrors.NewMalformedDocumentError("resource object without a type")
	}

	*r = Resource(alias)
	return nil
}

// Document is a top level JSON:API document
type Document struct {
	Data         []Resource
	HasData      bool
	IsCollection bool
	Included     []Resource
	Meta         map[string]any
}

func (d *Document) UnmarshalJSON(body []byte) error {
	var contents map[string]json.RawMessage

	err := json.Unmarshal(body, &contents)
	if err != nil {
		return jsonapierrors.NewMalformedDocumentError("document must be an object")
	}

	*d = Document{}

	if raw, ok := contents["data"]; ok {
		raw = bytes.TrimSpace(raw)
		d.HasData = true

		switch {
		case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		case raw[0] == '{':
			r := Resource{}
			if err = json.Unmarshal(raw, &r); err != nil {
				return err
			}
			d.Data = []Resource{r}
		case raw[0] == '[':
			d.IsCollection = true
			d.Data = []Resource{}
			if err = json.Unmarshal(raw, &d.Data); err != nil {
				return err
			}
		default:
			return jsonapierrors.NewMalformedDocumentError(
				fmt.Sprintf("data must be an object or an array, not %s", string(raw)),
			)
		}
	}

	if raw, ok := contents["included"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if err = json.Unmarshal(raw, &d.Included); err != nil {
			if errors.Is(err, jsonapierrors.ErrMalformedDocument) {
				return err
			}
			return jsonapierrors.NewMalformedDocumentError("included must be an array of resource objects")
		}
	}

	if raw, ok := contents["meta"]; ok {
		if err = json.Unmarshal(raw, &d.Meta); err != nil {
			return jsonapierrors.NewMalformedDocumentError("meta must be an object")
		}
	}

	return nil
}

// Index maps every identified resource in the document to its full resource object.
// Primary data takes precedence over the included pool, and the first appearance of a
// repeated identity in the included pool wins.
func (d *Document) Index() map[Identity]*Resource {
	index := make(map[Identity]*Resource, len(d.Data)+len(d.Included))

	add := func(resources []Resource) {
		for idx := range resources {
			r := &resources[idx]
			if r.ID == "" {
				continue
			}
			if _, exists := index[r.Identity()]; !exists {
				index[r.Identity()] = r
			}
		}
	}

	add(d.Data)
	add(d.Included)

	return index
}

func NewDocumentFromJSON(body []byte) (*Document, error) {
	d := &Document{}

	err := json.Unmarshal(body, d)
	if err != nil {
		if errors.Is(err, jsonapierrors.ErrMalformedDocument) {
			return nil, err
		}
		return nil, jsonapierrors.NewMalformedDocumentError(err.Error())
	}

	return d, nil
}
