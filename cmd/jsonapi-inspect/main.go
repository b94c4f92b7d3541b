package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/diwise/jsonapi-orm/internal/pkg/application/inspector"
	"github.com/diwise/jsonapi-orm/internal/pkg/infrastructure/router"
	"github.com/diwise/jsonapi-orm/internal/pkg/presentation/api/inspect"
	"github.com/diwise/jsonapi-orm/pkg/datamodels/library"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName string = "jsonapi-inspect"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	registry, err := loadSchema(ctx, env.GetVariableOrDefault(ctx, "SCHEMA_PATH", ""))
	if err != nil {
		log.Error("failed to load schema", "err", err.Error())
		os.Exit(1)
	}

	policies, err := openPolicies(env.GetVariableOrDefault(ctx, "POLICY_PATH", ""))
	if err != nil {
		log.Error("failed to open authorization policies", "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	app := inspector.New(registry)
	r := router.New(serviceName)

	err = inspect.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	log.Info("starting to listen for connections", "port", port, "types", strings.Join(registry.Types(), ","))

	err = http.ListenAndServe(":"+port, otelhttp.NewHandler(r, serviceName))
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

// loadSchema reads type declarations from a yaml file, falling back to the library
// datamodel when no path is given
func loadSchema(ctx context.Context, path string) (*schema.Registry, error) {
	if path == "" {
		logging.GetFromContext(ctx).Info("no schema path configured, using the library datamodel")
		return library.Registry(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	return schema.LoadConfiguration(f)
}

func openPolicies(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader(allowAllPolicy)), nil
	}

	return os.Open(path)
}

const allowAllPolicy string = `
package example.authz

default allow := false

allow = response {
    response := {}
}
`
