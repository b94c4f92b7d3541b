package include

import (
	"errors"
	"strings"
	"testing"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/matryer/is"
)

func TestNormalizeName(t *testing.T) {
	is := is.New(t)

	d, err := Normalize("books")
	is.NoErr(err)
	is.Equal(d, Directive{"books": Directive{}})
}

func TestNormalizeListOfNames(t *testing.T) {
	is := is.New(t)

	d, err := Normalize([]string{"books", "genre"})
	is.NoErr(err)
	is.Equal(d, Directive{"books": Directive{}, "genre": Directive{}})
}

func TestNormalizeNestedMapping(t *testing.T) {
	is := is.New(t)

	d, err := Normalize(map[string]any{
		"books": map[string]any{"genre": map[string]any{}},
		"tags":  "owner",
		"bio":   nil,
	})
	is.NoErr(err)
	is.Equal(d.String(), "bio,books.genre,tags.owner")
	is.True(d.Sub("books").Has("genre"))
	is.True(!d.Has("genre"))
}

func TestNormalizeMixedList(t *testing.T) {
	is := is.New(t)

	d, err := Normalize([]any{"books.genre", map[string]any{"books": "author"}})
	is.NoErr(err)
	is.Equal(d.String(), "books.author,books.genre")
}

func TestNormalizeYAMLStyleMapping(t *testing.T) {
	is := is.New(t)

	d, err := Normalize(map[any]any{"books": []any{"genre"}})
	is.NoErr(err)
	is.Equal(d.String(), "books.genre")
}

func TestNormalizeRejectsUnsupportedShapes(t *testing.T) {
	is := is.New(t)

	_, err := Normalize(42)
	is.True(errors.Is(err, jsonapierrors.ErrInvalidInclude))

	_, err = Normalize(map[string]any{"books": 42})
	is.True(errors.Is(err, jsonapierrors.ErrInvalidInclude))
}

func TestNormalizeCopiesDirectives(t *testing.T) {
	is := is.New(t)

	original := Paths("books")
	d, err := Normalize(original)
	is.NoErr(err)

	d["tags"] = Directive{}
	is.True(!original.Has("tags")) // the caller's directive must not change
}

func TestParseIncludeParameter(t *testing.T) {
	is := is.New(t)

	d := Parse("books.genre, books.author,tags")
	is.Equal(d.String(), "books.author,books.genre,tags")
	is.Equal(len(Parse("")), 0)
}

func TestSubOfMissingNameIsEmpty(t *testing.T) {
	is := is.New(t)

	var d Directive
	is.True(d.Sub("books").IsEmpty())
	is.True(!d.Has("books"))
}

func TestMergeDoesNotModifyOperands(t *testing.T) {
	is := is.New(t)

	a := Paths("books.genre")
	b := Paths("books.author", "tags")

	merged := a.Merge(b)

	is.Equal(merged.String(), "books.author,books.genre,tags")
	is.Equal(a.String(), "books.genre")
	is.Equal(b.String(), "books.author,tags")
}

func TestRenameConvertsEveryLevel(t *testing.T) {
	is := is.New(t)

	d := Parse("favorite-books.literary-genre,favorite_books.author,tags").Rename(strings.ToUpper)

	is.Equal(d.String(), "FAVORITE-BOOKS.LITERARY-GENRE,FAVORITE_BOOKS.AUTHOR,TAGS")

	merged := Paths("a.x", "A.y").Rename(strings.ToLower)
	is.Equal(merged.String(), "a.x,a.y")
}
