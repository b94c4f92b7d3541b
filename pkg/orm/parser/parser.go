package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("jsonapi-orm/parser")

const (
	TraceAttributeResourceType string = "jsonapi.type"
	TraceAttributeResourceID   string = "jsonapi.id"
	TraceAttributeInclude      string = "jsonapi.include"
)

// TypeResolver finds the type descriptor used to construct entities for a JSON:API type name
type TypeResolver interface {
	Lookup(typeName string) (*schema.TypeDescriptor, bool)
}

type ParserOption func(*Parser)

// WithKeyFormatter sets the function that maps wire attribute and relationship keys to
// the names declared by the type descriptors. Defaults to schema.CamelCase.
func WithKeyFormatter(keys schema.KeyFormatter) ParserOption {
	return func(p *Parser) {
		if keys != nil {
			p.keys = keys
		}
	}
}

func WithCaster(cast schema.Caster) ParserOption {
	return func(p *Parser) {
		if cast != nil {
			p.cast = cast
		}
	}
}

// Parser ingests JSON:API documents into entity graphs. A Parser holds no state between
// calls and may be shared, but callers must serialize parses that merge into the same
// entity graph.
type Parser struct {
	types TypeResolver
	keys  schema.KeyFormatter
	cast  schema.Caster
}

func New(types TypeResolver, options ...ParserOption) *Parser {
	p := &Parser{
		types: types,
		keys:  schema.CamelCase,
		cast:  schema.DefaultCaster,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// ingestion holds the state of a single top level parse call
type ingestion struct {
	types  TypeResolver
	keys   schema.KeyFormatter
	cast   schema.Caster
	logger *slog.Logger

	registry *entityRegistry
	pool     map[jsonapi.Identity]*jsonapi.Resource
}

func (p *Parser) newIngestion(ctx context.Context, doc *jsonapi.Document) *ingestion {
	return &ingestion{
		types:    p.types,
		keys:     p.keys,
		cast:     p.cast,
		logger:   logging.GetFromContext(ctx),
		registry: newEntityRegistry(),
		pool:     doc.Index(),
	}
}

// Parse merges the single primary resource of doc into target, or into a new entity when
// target is nil, and resolves its relationships against the included resources. Members
// marked for destruction or disassociation are pruned from the relationship paths named
// by the directive. A document with null primary data yields a nil entity.
func (p *Parser) Parse(ctx context.Context, target *entities.Entity, doc *jsonapi.Document, directive include.Directive) (result *entities.Entity, err error) {
	ctx, span := tracer.Start(ctx, "parse-document",
		trace.WithAttributes(attribute.String(TraceAttributeInclude, directive.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if doc == nil || !doc.HasData {
		err = jsonapierrors.NewMalformedDocumentError("document has no primary data")
		return nil, err
	}

	if doc.IsCollection {
		err = jsonapierrors.NewMalformedDocumentError("expected a single resource but got a collection")
		return nil, err
	}

	if len(doc.Data) == 0 {
		return nil, nil
	}

	primary := &doc.Data[0]

	span.SetAttributes(
		attribute.String(TraceAttributeResourceType, primary.Type),
		attribute.String(TraceAttributeResourceID, primary.ID),
	)

	if target != nil && target.Type() != primary.Type {
		err = jsonapierrors.NewMalformedDocumentError(
			fmt.Sprintf("cannot merge a resource of type %s into an entity of type %s", primary.Type, target.Type()),
		)
		return nil, err
	}

	in := p.newIngestion(ctx, doc)

	result, err = in.ingest(target, primary)
	if err != nil {
		return nil, err
	}

	err = prune(result, directive)
	if err != nil {
		return nil, err
	}

	if doc.Meta != nil {
		result.SetMeta(copyMeta(doc.Meta))
	}

	return result, nil
}

// Collection is the result of parsing a document whose primary data is an array
type Collection struct {
	Entities []*entities.Entity
	Meta     map[string]any
}

// ParseCollection ingests every primary resource of doc into new entities. All primary
// resources share one identity map, so a primary resource that is also referenced from
// another one is represented by a single instance. Primary resources of unknown types
// are skipped.
func (p *Parser) ParseCollection(ctx context.Context, doc *jsonapi.Document, directive include.Directive) (result *Collection, err error) {
	ctx, span := tracer.Start(ctx, "parse-collection",
		trace.WithAttributes(attribute.String(TraceAttributeInclude, directive.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if doc == nil || !doc.HasData {
		err = jsonapierrors.NewMalformedDocumentError("document has no primary data")
		return nil, err
	}

	in := p.newIngestion(ctx, doc)

	result = &Collection{
		Entities: make([]*entities.Entity, 0, len(doc.Data)),
		Meta:     copyMeta(doc.Meta),
	}

	for idx := range doc.Data {
		primary := &doc.Data[idx]

		e := in.registry.lookup(primary.Identity())
		if e == nil {
			e, err = in.ingest(nil, primary)
			if err != nil {
				if errors.Is(err, jsonapierrors.ErrUnknownType) {
					in.logger.Debug("skipping primary resource of unknown type", "type", primary.Type, "id", primary.ID)
					err = nil
					continue
				}
				return nil, err
			}
		}

		result.Entities = append(result.Entities, e)
	}

	for _, e := range result.Entities {
		if err = prune(e, directive); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ParseJSON decodes body as a JSON:API document and parses it into target
func (p *Parser) ParseJSON(ctx context.Context, target *entities.Entity, body []byte, directive include.Directive) (*entities.Entity, error) {
	doc, err := jsonapi.NewDocumentFromJSON(body)
	if err != nil {
		return nil, err
	}

	return p.Parse(ctx, target, doc, directive)
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	c := make(map[string]any, len(meta))
	for k, v := range meta {
		c[k] = v
	}
	return c
}
