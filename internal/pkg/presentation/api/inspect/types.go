package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/diwise/jsonapi-orm/internal/pkg/application/inspector"
	"github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/auth"
	apierrors "github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect/errors"
	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type typeAttributes struct {
	Attributes    map[string]string `json:"attributes"`
	Relationships map[string]any    `json:"relationships"`
}

type typeResource struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes typeAttributes `json:"attributes"`
}

// NewRetrieveTypesHandler handles GET requests for the resource types known to the
// service. The response is a JSON:API document with one "types" resource per type.
func NewRetrieveTypesHandler(app inspector.TypesRetriever, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx)

		err = authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorized(w, "not authorized", traceID(ctx))
			return
		}

		data := []typeResource{}

		for _, td := range app.RetrieveTypes(ctx) {
			tr := typeResource{
				Type: "types",
				ID:   td.Name,
				Attributes: typeAttributes{
					Attributes:    map[string]string{},
					Relationships: map[string]any{},
				},
			}

			for _, a := range td.Attributes {
				tr.Attributes.Attributes[a.Name] = string(a.Type)
			}

			for _, rel := range td.Relationships {
				tr.Attributes.Relationships[rel.Name] = map[string]any{"type": rel.Type, "toMany": rel.ToMany}
			}

			data = append(data, tr)
		}

		responseBody, err := json.Marshal(map[string]any{"data": data})
		if err != nil {
			log.Error("retrieve types: failed to marshal type list to json", "err", err.Error())
			apierrors.ReportInternalError(w, err.Error(), traceID(ctx))
			return
		}

		w.Header().Add("Content-Type", jsonapi.ContentType)
		w.WriteHeader(http.StatusOK)
		w.Write(responseBody)
	})
}
