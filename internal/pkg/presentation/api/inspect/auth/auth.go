package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("jsonapi-orm/inspect/authz")

var ErrAccessDenied = errors.New("authorization failed")

// Enticator decides if a request may touch resources of the given JSON:API types
type Enticator interface {
	CheckAccess(ctx context.Context, r *http.Request, resourceTypes []string) error
}

type enticatorImpl struct {
	preparedQuery rego.PreparedEvalQuery
}

// NewAuthenticator prepares the rego policies read from policies. The policies must
// define data.example.authz.allow, evaluating to an object when access is granted.
func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	impl := &enticatorImpl{}

	impl.preparedQuery, err = rego.New(
		rego.Query("x = data.example.authz.allow"),
		rego.Module("example.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return impl, nil
}

func (e *enticatorImpl) CheckAccess(ctx context.Context, r *http.Request, resourceTypes []string) error {
	var err error

	ctx, span := tracer.Start(ctx, "check-auth",
		trace.WithAttributes(attribute.StringSlice("jsonapi.types", resourceTypes)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token := r.Header.Get("Authorization")

	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}

	path := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	types := resourceTypes
	if types == nil {
		types = []string{}
	}

	input := map[string]any{
		"method": r.Method,
		"path":   path,
		"token":  token,
		"types":  types,
	}

	results, err := e.preparedQuery.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		err = fmt.Errorf("opa eval failed: %w", err)
		return err
	}

	if len(results) == 0 {
		err = fmt.Errorf("%w: opa query could not be satisfied", ErrAccessDenied)
		return err
	}

	binding := results[0].Bindings["x"]

	// a denied request yields a single bool
	allowed, ok := binding.(bool)
	if ok && !allowed {
		err = ErrAccessDenied
		return err
	}

	if _, ok = binding.(map[string]any); !ok {
		err = errors.New("opa error: unexpected result type")
		return err
	}

	return nil
}
