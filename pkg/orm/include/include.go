// Package include normalizes the different shapes of an include directive (a relationship
// name, a list of names, or a nested mapping) into one recursive representation.
package include

import (
	"fmt"
	"sort"
	"strings"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
)

// Directive is a set of relationship names, each with the directive that applies below it.
// Leaves are empty directives.
type Directive map[string]Directive

// Paths builds a directive from dotted relationship paths such as "books.genre"
func Paths(paths ...string) Directive {
	d := Directive{}
	for _, p := range paths {
		d.addPath(p)
	}
	return d
}

// Parse reads the comma separated form used by the JSON:API include query parameter
func Parse(s string) Directive {
	if strings.TrimSpace(s) == "" {
		return Directive{}
	}
	return Paths(strings.Split(s, ",")...)
}

// Normalize accepts nil, a name or dotted path, a list of those, or a nested mapping whose
// values are themselves anything Normalize accepts.
func Normalize(v any) (Directive, error) {
	switch typed := v.(type) {
	case nil:
		return Directive{}, nil
	case Directive:
		return typed.clone(), nil
	case string:
		return Paths(typed), nil
	case []string:
		return Paths(typed...), nil
	case []any:
		d := Directive{}
		for _, item := range typed {
			nested, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			d = d.Merge(nested)
		}
		return d, nil
	case map[string]Directive:
		return Directive(typed).clone(), nil
	case map[string]any:
		d := Directive{}
		for name, value := range typed {
			nested, err := Normalize(value)
			if err != nil {
				return nil, err
			}
			d = d.Merge(Directive{name: nested})
		}
		return d, nil
	case map[any]any:
		// yaml.v2 decodes nested mappings with interface keys
		d := Directive{}
		for key, value := range typed {
			name, ok := key.(string)
			if !ok {
				return nil, jsonapierrors.NewInvalidIncludeError(fmt.Sprintf("relationship name %v is not a string", key))
			}
			nested, err := Normalize(value)
			if err != nil {
				return nil, err
			}
			d = d.Merge(Directive{name: nested})
		}
		return d, nil
	}

	return nil, jsonapierrors.NewInvalidIncludeError(fmt.Sprintf("unsupported type %T", v))
}

func (d Directive) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Sub returns the directive nested under name, or an empty directive
func (d Directive) Sub(name string) Directive {
	if sub, ok := d[name]; ok && sub != nil {
		return sub
	}
	return Directive{}
}

func (d Directive) IsEmpty() bool {
	return len(d) == 0
}

// Merge returns the union of both directives without modifying either of them
func (d Directive) Merge(other Directive) Directive {
	result := d.clone()

	for name, sub := range other {
		if existing, ok := result[name]; ok {
			result[name] = existing.Merge(sub)
		} else {
			result[name] = sub.clone()
		}
	}

	return result
}

// Rename returns a copy of the directive with every relationship name passed through
// name. Names that end up equal are merged.
func (d Directive) Rename(name func(string) string) Directive {
	result := make(Directive, len(d))
	for n, sub := range d {
		result = result.Merge(Directive{name(n): sub.Rename(name)})
	}
	return result
}

// String renders the directive in include parameter form with sorted paths
func (d Directive) String() string {
	return strings.Join(d.paths(""), ",")
}

func (d Directive) paths(prefix string) []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	result := []string{}

	for _, name := range names {
		path := prefix + name
		sub := d[name]
		if len(sub) == 0 {
			result = append(result, path)
			continue
		}
		result = append(result, sub.paths(path+".")...)
	}

	return result
}

func (d Directive) addPath(path string) {
	current := d

	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		next, ok := current[segment]
		if !ok || next == nil {
			next = Directive{}
			current[segment] = next
		}
		current = next
	}
}

func (d Directive) clone() Directive {
	result := make(Directive, len(d))
	for name, sub := range d {
		result[name] = sub.clone()
	}
	return result
}
