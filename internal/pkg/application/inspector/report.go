package inspector

import (
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
)

type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// EntityReport describes a single entity of an inspected graph. Relationships hold the
// keys of the referenced entities, a string for to-one and a list for to-many.
type EntityReport struct {
	Key                     string            `json:"key"`
	Type                    string            `json:"type"`
	ID                      string            `json:"id,omitempty"`
	Attributes              map[string]any    `json:"attributes"`
	Relationships           map[string]any    `json:"relationships,omitempty"`
	Meta                    map[string]any    `json:"meta,omitempty"`
	Changes                 map[string]Change `json:"changes,omitempty"`
	Persisted               bool              `json:"persisted"`
	Dirty                   bool              `json:"dirty"`
	MarkedForDestruction    bool              `json:"markedForDestruction,omitempty"`
	MarkedForDisassociation bool              `json:"markedForDisassociation,omitempty"`
}

// Report is the result of an inspection. Dirty tells if any root is dirty within the
// relationship paths that were asked for.
type Report struct {
	Roots    []string       `json:"roots"`
	Dirty    bool           `json:"dirty"`
	Paths    string         `json:"paths,omitempty"`
	Entities []EntityReport `json:"entities"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// KeyOf returns "type/id", or "type/~temporaryid" for entities that have no id yet
func KeyOf(e *entities.Entity) string {
	if e.ID() != "" {
		return e.Type() + "/" + e.ID()
	}
	return e.Type() + "/~" + e.TemporaryID()
}

// NewReport walks every entity reachable from the roots, in breadth first order
func NewReport(roots []*entities.Entity, dirty include.Directive, meta map[string]any) *Report {
	report := &Report{
		Roots:    make([]string, 0, len(roots)),
		Paths:    dirty.String(),
		Entities: []EntityReport{},
		Meta:     meta,
	}

	visited := map[*entities.Entity]bool{}
	queue := []*entities.Entity{}

	enqueue := func(e *entities.Entity) {
		if e != nil && !visited[e] {
			visited[e] = true
			queue = append(queue, e)
		}
	}

	for _, root := range roots {
		report.Roots = append(report.Roots, KeyOf(root))
		if root.IsDirtyWithin(dirty) {
			report.Dirty = true
		}
		enqueue(root)
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		report.Entities = append(report.Entities, newEntityReport(e))

		for _, r := range e.Descriptor().Relationships {
			if r.ToMany {
				for _, m := range e.Many(r.Name) {
					enqueue(m)
				}
			} else {
				enqueue(e.One(r.Name))
			}
		}
	}

	return report
}

func newEntityReport(e *entities.Entity) EntityReport {
	er := EntityReport{
		Key:                     KeyOf(e),
		Type:                    e.Type(),
		ID:                      e.ID(),
		Attributes:              e.Attributes(),
		Relationships:           map[string]any{},
		Meta:                    e.Meta(),
		Persisted:               e.IsPersisted(),
		Dirty:                   e.IsDirty(),
		MarkedForDestruction:    e.IsMarkedForDestruction(),
		MarkedForDisassociation: e.IsMarkedForDisassociation(),
	}

	for _, r := range e.Descriptor().Relationships {
		if r.ToMany {
			keys := []string{}
			for _, m := range e.Many(r.Name) {
				keys = append(keys, KeyOf(m))
			}
			er.Relationships[r.Name] = keys
		} else if one := e.One(r.Name); one != nil {
			er.Relationships[r.Name] = KeyOf(one)
		} else {
			er.Relationships[r.Name] = nil
		}
	}

	changes := e.Changes()
	if len(changes) > 0 {
		er.Changes = make(map[string]Change, len(changes))
		for name, c := range changes {
			er.Changes[name] = Change{From: c.From, To: c.To}
		}
	}

	return er
}
