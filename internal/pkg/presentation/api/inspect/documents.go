package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"

	"github.com/diwise/jsonapi-orm/internal/pkg/application/inspector"
	"github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/auth"
	apierrors "github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/errors"
	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	TraceAttributeInclude string = "inspect.include"
	TraceAttributeDirty   string = "inspect.dirty"
)

// NewInspectDocumentHandler handles POST requests with a JSON:API document to be parsed
// and reported on. The include query parameter selects the relationship paths that are
// pruned and the dirty parameter the paths that are checked for changes.
func NewInspectDocumentHandler(app inspector.DocumentInspector, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()

		directive, dirty := queryDirective(r, "include"), queryDirective(r, "dirty")

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		if labeler != nil {
			labeler.Add(
				attribute.String(TraceAttributeInclude, directive.String()),
				attribute.String(TraceAttributeDirty, dirty.String()),
			)
		}
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apierrors.ReportBadRequest(w, "unable to read request body", traceID(ctx))
			return
		}

		types, err := documentTypes(body)
		if err != nil {
			log.Info("rejected malformed document", "err", err.Error())
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		err = authenticator.CheckAccess(ctx, r, types)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		report, err := app.InspectDocument(ctx, body, directive, dirty)
		if err != nil {
			log.Error("inspect document failed", "err", err.Error())
			mapInspectorToJSONAPIError(w, err, traceID(ctx))
			return
		}

		writeReport(w, r, report)
	})
}

// documentTypes returns the sorted, distinct types found in the primary data and the
// included resources of a document
func documentTypes(body []byte) ([]string, error) {
	doc, err := jsonapi.NewDocumentFromJSON(body)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	types := []string{}

	for _, resources := range [][]jsonapi.Resource{doc.Data, doc.Included} {
		for _, r := range resources {
			if !seen[r.Type] {
				seen[r.Type] = true
				types = append(types, r.Type)
			}
		}
	}

	sort.Strings(types)

	return types, nil
}

func writeReport(w http.ResponseWriter, r *http.Request, report *inspector.Report) {
	responseBody, err := json.Marshal(report)
	if err != nil {
		logging.GetFromContext(r.Context()).Error("failed to marshal report to json", "err", err.Error())
		apierrors.ReportInternalError(w, err.Error(), traceID(r.Context()))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}
