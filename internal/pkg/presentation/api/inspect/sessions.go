package inspect

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/diwise/jsonapi-orm/internal/pkg/application/inspector"
	"github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/auth"
	apierrors "github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// NewMergeDocumentHandler handles PUT requests that merge a document into the entity
// graph of a session, creating the session if needed
func NewMergeDocumentHandler(app inspector.SessionManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		sessionID := chi.URLParam(r, "sessionId")

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		if labeler != nil {
			labeler.Add(attribute.String(inspector.TraceAttributeSession, sessionID))
		}
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx).With("session", sessionID)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apierrors.ReportBadRequest(w, "unable to read request body", traceID(ctx))
			return
		}

		types, err := documentTypes(body)
		if err != nil {
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		err = authenticator.CheckAccess(ctx, r, types)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		report, err := app.MergeDocument(ctx, sessionID, body, queryDirective(r, "include"))
		if err != nil {
			log.Error("merge document failed", "err", err.Error())
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		writeReport(w, r, report)
	})
}

func NewRetrieveSessionHandler(app inspector.SessionManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		sessionID := chi.URLParam(r, "sessionId")

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx).With("session", sessionID)

		err = authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		report, err := app.RetrieveSession(ctx, sessionID, queryDirective(r, "dirty"))
		if err != nil {
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		writeReport(w, r, report)
	})
}

// NewUpdateEntityHandler handles PATCH requests that edit an entity of a session locally.
// The body is an inspector.EntityUpdate.
func NewUpdateEntityHandler(app inspector.SessionManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		sessionID := chi.URLParam(r, "sessionId")
		entityType := chi.URLParam(r, "entityType")
		entityID := chi.URLParam(r, "entityId")

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx).With("session", sessionID, "type", entityType, "id", entityID)

		update := inspector.EntityUpdate{}
		err = json.NewDecoder(r.Body).Decode(&update)
		if err != nil {
			apierrors.ReportBadRequest(w, "unable to decode request payload: "+err.Error(), traceID(ctx))
			return
		}

		err = authenticator.CheckAccess(ctx, r, []string{entityType})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		report, err := app.UpdateEntity(ctx, sessionID, entityType, entityID, update, queryDirective(r, "dirty"))
		if err != nil {
			log.Info("update entity failed", "err", err.Error())
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		writeReport(w, r, report)
	})
}

func NewDeleteSessionHandler(app inspector.SessionManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		sessionID := chi.URLParam(r, "sessionId")

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		err = authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			logging.GetFromContext(ctx).Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		err = app.DeleteSession(ctx, sessionID)
		if err != nil {
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
