package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaultSchema(t *testing.T) {
	is := is.New(t)

	registry, err := loadSchema(context.Background(), "")
	is.NoErr(err)
	is.Equal(len(registry.Types()), 5)
}

func TestLoadSchemaFromFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "schema.yaml")
	is.NoErr(os.WriteFile(path, []byte(schemaFile), 0o600))

	registry, err := loadSchema(context.Background(), path)
	is.NoErr(err)
	is.Equal(registry.Types(), []string{"articles", "people"})
}

func TestLoadMissingSchemaFails(t *testing.T) {
	is := is.New(t)

	_, err := loadSchema(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestDefaultPolicyIsUsedWithoutPath(t *testing.T) {
	is := is.New(t)

	policies, err := openPolicies("")
	is.NoErr(err)
	defer policies.Close()

	b, _ := io.ReadAll(policies)
	is.Equal(string(b), allowAllPolicy)
}

const schemaFile string = `
types:
  - type: articles
    attributes:
      - name: title
        type: string
    relationships:
      - name: author
        type: people
  - type: people
    attributes:
      - name: name
        type: string
`
