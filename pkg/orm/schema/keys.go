package schema

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// KeyFormatter converts an attribute key between wire casing and local casing
type KeyFormatter func(key string) string

func Verbatim(key string) string {
	return key
}

// CamelCase turns snake_case and kebab-case wire keys into lowerCamelCase. Leading
// underscores are kept.
func CamelCase(key string) string {
	rest := strings.TrimLeft(key, "_")
	if rest == "" {
		return key
	}

	return key[:len(key)-len(rest)] + strcase.ToLowerCamel(rest)
}

func ToSnake(key string) string {
	return strcase.ToSnake(key)
}

func ToKebab(key string) string {
	return strcase.ToKebab(key)
}
