package inspector

import (
	"context"
	"fmt"
	"sync"

	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
	"github.com/diwise/jsonapi-orm/pkg/orm/parser"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("jsonapi-orm/inspector")

const TraceAttributeSession string = "inspector.session"

type DocumentInspector interface {
	InspectDocument(ctx context.Context, body []byte, directive, dirty include.Directive) (*Report, error)
}

type TypesRetriever interface {
	RetrieveTypes(ctx context.Context) []*schema.TypeDescriptor
}

// SessionManager keeps one entity graph per session, so that documents can be merged into
// earlier results and local edits can be tracked against what the server returned.
type SessionManager interface {
	MergeDocument(ctx context.Context, session string, body []byte, directive include.Directive) (*Report, error)
	RetrieveSession(ctx context.Context, session string, dirty include.Directive) (*Report, error)
	UpdateEntity(ctx context.Context, session, entityType, entityID string, update EntityUpdate, dirty include.Directive) (*Report, error)
	DeleteSession(ctx context.Context, session string) error
}

//go:generate moq -rm -out inspector_mock.go . Inspector

type Inspector interface {
	DocumentInspector
	TypesRetriever
	SessionManager
}

const (
	MarkDestroy      string = "destroy"
	MarkDisassociate string = "disassociate"
	MarkClear        string = "clear"
)

// EntityUpdate describes a local edit of an entity in a session. Rollback is applied
// first, then the attributes and last the mark.
type EntityUpdate struct {
	Rollback   bool           `json:"rollback,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Mark       string         `json:"mark,omitempty"`
}

type session struct {
	mu        sync.Mutex
	root      *entities.Entity
	discarded bool
}

type inspectorApp struct {
	registry *schema.Registry
	parser   *parser.Parser
	keys     schema.KeyFormatter
	cast     schema.Caster

	mu       sync.Mutex
	sessions map[string]*session
}

func New(registry *schema.Registry) Inspector {
	return &inspectorApp{
		registry: registry,
		parser:   parser.New(registry),
		keys:     schema.CamelCase,
		cast:     schema.DefaultCaster,
		sessions: map[string]*session{},
	}
}

func (app *inspectorApp) InspectDocument(ctx context.Context, body []byte, directive, dirty include.Directive) (result *Report, err error) {
	ctx, span := tracer.Start(ctx, "inspect-document")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	doc, err := jsonapi.NewDocumentFromJSON(body)
	if err != nil {
		return nil, err
	}

	if doc.IsCollection {
		var c *parser.Collection
		c, err = app.parser.ParseCollection(ctx, doc, directive)
		if err != nil {
			return nil, err
		}
		return NewReport(c.Entities, dirty, c.Meta), nil
	}

	root, err := app.parser.Parse(ctx, nil, doc, directive)
	if err != nil {
		return nil, err
	}

	if root == nil {
		return NewReport(nil, dirty, doc.Meta), nil
	}

	return NewReport([]*entities.Entity{root}, dirty, root.Meta()), nil
}

func (app *inspectorApp) RetrieveTypes(ctx context.Context) []*schema.TypeDescriptor {
	names := app.registry.Types()
	types := make([]*schema.TypeDescriptor, 0, len(names))

	for _, name := range names {
		if td, ok := app.registry.Lookup(name); ok {
			types = append(types, td)
		}
	}

	return types
}

func (app *inspectorApp) MergeDocument(ctx context.Context, sessionID string, body []byte, directive include.Directive) (result *Report, err error) {
	ctx, span := tracer.Start(ctx, "merge-document",
		trace.WithAttributes(attribute.String(TraceAttributeSession, sessionID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	s := app.acquireSession(sessionID)
	defer s.mu.Unlock()

	root, err := app.parser.ParseJSON(ctx, s.root, body, directive)
	if err == nil && root == nil {
		err = NewInvalidRequestError("a session document must contain a resource")
	}

	if err != nil {
		if s.root == nil {
			app.discardSession(sessionID, s)
		}
		return nil, err
	}

	if s.root == nil {
		logging.GetFromContext(ctx).Debug("session created", "session", sessionID, "root", KeyOf(root))
	}

	s.root = root

	return NewReport([]*entities.Entity{root}, directive, root.Meta()), nil
}

func (app *inspectorApp) RetrieveSession(ctx context.Context, sessionID string, dirty include.Directive) (*Report, error) {
	s := app.lookupSession(sessionID, false)
	if s == nil {
		return nil, NewUnknownSessionError(sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.root == nil {
		return nil, NewUnknownSessionError(sessionID)
	}

	return NewReport([]*entities.Entity{s.root}, dirty, s.root.Meta()), nil
}

func (app *inspectorApp) UpdateEntity(ctx context.Context, sessionID, entityType, entityID string, update EntityUpdate, dirty include.Directive) (result *Report, err error) {
	_, span := tracer.Start(ctx, "update-entity",
		trace.WithAttributes(
			attribute.String(TraceAttributeSession, sessionID),
			attribute.String(parser.TraceAttributeResourceType, entityType),
			attribute.String(parser.TraceAttributeResourceID, entityID),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	s := app.lookupSession(sessionID, false)
	if s == nil {
		err = NewUnknownSessionError(sessionID)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := findEntity(s.root, entityType, entityID)
	if e == nil {
		err = NewNotFoundError(fmt.Sprintf("no entity %s/%s in session %s", entityType, entityID, sessionID))
		return nil, err
	}

	err = app.apply(e, update)
	if err != nil {
		return nil, err
	}

	return NewReport([]*entities.Entity{s.root}, dirty, s.root.Meta()), nil
}

func (app *inspectorApp) DeleteSession(ctx context.Context, sessionID string) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if _, ok := app.sessions[sessionID]; !ok {
		return NewUnknownSessionError(sessionID)
	}

	delete(app.sessions, sessionID)
	return nil
}

func (app *inspectorApp) lookupSession(sessionID string, create bool) *session {
	app.mu.Lock()
	defer app.mu.Unlock()

	s, ok := app.sessions[sessionID]
	if !ok && create {
		s = &session{}
		app.sessions[sessionID] = s
	}

	return s
}

// acquireSession returns the locked session, creating it when missing. A session that was
// discarded while the caller waited for its lock is replaced by a fresh one.
func (app *inspectorApp) acquireSession(sessionID string) *session {
	for {
		s := app.lookupSession(sessionID, true)
		s.mu.Lock()

		if !s.discarded {
			return s
		}

		s.mu.Unlock()
	}
}

// discardSession drops a session that never got a root. The caller must hold s.mu.
func (app *inspectorApp) discardSession(sessionID string, s *session) {
	app.mu.Lock()
	defer app.mu.Unlock()

	s.discarded = true

	if app.sessions[sessionID] == s {
		delete(app.sessions, sessionID)
	}
}

// apply validates and casts the whole update before the entity is touched, so that a
// rejected update leaves the entity as it was
func (app *inspectorApp) apply(e *entities.Entity, update EntityUpdate) error {
	switch update.Mark {
	case "", MarkDestroy, MarkDisassociate, MarkClear:
	default:
		return NewInvalidRequestError(fmt.Sprintf("unknown mark %q", update.Mark))
	}

	staged := make(map[string]any, len(update.Attributes))

	for key, raw := range update.Attributes {
		name := app.keys(key)

		attr, ok := e.Descriptor().Attribute(name)
		if !ok {
			return jsonapierrors.NewUnknownAttributeError(e.Type(), name)
		}

		value, err := app.cast(attr, raw)
		if err != nil {
			return NewInvalidRequestError(err.Error())
		}

		staged[name] = value
	}

	if update.Rollback {
		e.Rollback()
	}

	for name, value := range staged {
		if err := e.Set(name, value); err != nil {
			return err
		}
	}

	switch update.Mark {
	case MarkDestroy:
		e.MarkForDestruction()
	case MarkDisassociate:
		e.MarkForDisassociation()
	case MarkClear:
		e.ClearMarks()
	}

	return nil
}

func findEntity(root *entities.Entity, entityType, entityID string) *entities.Entity {
	if root == nil {
		return nil
	}

	visited := map[*entities.Entity]bool{root: true}
	queue := []*entities.Entity{root}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if e.Type() == entityType && (e.ID() == entityID || "~"+e.TemporaryID() == entityID) {
			return e
		}

		for _, r := range e.Descriptor().Relationships {
			members := e.Many(r.Name)
			if !r.ToMany {
				members = []*entities.Entity{e.One(r.Name)}
			}

			for _, m := range members {
				if m != nil && !visited[m] {
					visited[m] = true
					queue = append(queue, m)
				}
			}
		}
	}

	return nil
}
