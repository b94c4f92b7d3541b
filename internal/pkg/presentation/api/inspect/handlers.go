package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/jsonapi-orm/internal/pkg/application/inspector"
	"github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/auth"
	apierrors "github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/errors"
	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app inspector.Inspector) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequiredContentTypes([]string{jsonapi.ContentType, "application/json"}),
		)

		r.Get("/types", NewRetrieveTypesHandler(app, authenticator))
		r.Post("/documents", NewInspectDocumentHandler(app, authenticator))

		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", NewRetrieveSessionHandler(app, authenticator))
			r.Put("/", NewMergeDocumentHandler(app, authenticator))
			r.Delete("/", NewDeleteSessionHandler(app, authenticator))

			r.Patch("/entities/{entityType}/{entityId}", NewUpdateEntityHandler(app, authenticator))
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

// queryDirective reads a relationship path parameter such as include. Wire cased names are
// converted to the declared relationship names, in the same way the parser converts keys.
func queryDirective(r *http.Request, name string) include.Directive {
	return include.Parse(r.URL.Query().Get(name)).Rename(schema.CamelCase)
}

func traceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil && labeler != nil {
		labeler.Add(attribute.Bool("error", true))
	}
}

func mapInspectorToJSONAPIError(w http.ResponseWriter, err error, traceID string) {
	var notFound inspector.NotFoundError
	var unknownSession inspector.UnknownSessionError
	var invalidRequest inspector.InvalidRequestError

	switch {
	case errors.Is(err, jsonapierrors.ErrMalformedDocument):
		apierrors.ReportMalformedDocument(w, err.Error(), traceID)
	case errors.Is(err, jsonapierrors.ErrInvalidInclude),
		errors.Is(err, jsonapierrors.ErrUnknownAttribute),
		errors.Is(err, jsonapierrors.ErrUnknownRelationship),
		errors.As(err, &invalidRequest):
		apierrors.ReportBadRequest(w, err.Error(), traceID)
	case errors.Is(err, jsonapierrors.ErrUnknownType):
		apierrors.ReportUnknownType(w, err.Error(), traceID)
	case errors.As(err, &notFound), errors.As(err, &unknownSession):
		apierrors.ReportNotFound(w, err.Error(), traceID)
	default:
		apierrors.ReportInternalError(w, err.Error(), traceID)
	}
}
