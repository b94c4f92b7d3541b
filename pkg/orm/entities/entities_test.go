package entities

import (
	"errors"
	"testing"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
	"github.com/matryer/is"
)

func TestNewEntityOnlyKeepsDeclaredAttributes(t *testing.T) {
	is := is.New(t)
	e, err := New(authorType, A("firstName", "Stephen"), A("shoeSize", 44))
	is.NoErr(err)

	is.Equal(e.Type(), "authors")
	is.Equal(e.ID(), "")

	_, ok := e.Get("shoeSize")
	is.True(!ok) // undeclared attributes must not be stored
	is.Equal(e.Attributes(), map[string]any{"firstName": "Stephen"})
}

func TestRelationshipDecoratorsIgnoreMismatches(t *testing.T) {
	is := is.New(t)
	book, _ := New(bookType, ID("b1"))
	genre, _ := New(genreType, ID("g1"))

	e, err := New(authorType,
		One("books", book),
		Many("genre", genre),
		One("publisher", book),
		Many("genre"),
		One("genre", genre),
	)
	is.NoErr(err)

	is.Equal(len(e.Many("books")), 0)
	is.Equal(e.One("genre"), genre)
	is.True(!e.HasRelationship("publisher"))
}

func TestNewEntityWithoutDescriptorFails(t *testing.T) {
	is := is.New(t)
	_, err := New(nil)
	is.True(err != nil)
}

func TestSetUnknownAttributeFails(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType)

	err := e.Set("shoeSize", 44)
	is.True(errors.Is(err, jsonapierrors.ErrUnknownAttribute))
}

func TestToManyRelationshipStartsEmpty(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType)

	is.True(e.Many("books") != nil)
	is.Equal(len(e.Many("books")), 0)
	is.True(e.One("genre") == nil)
}

func TestRelationshipCardinalityIsEnforced(t *testing.T) {
	is := is.New(t)
	author, _ := New(authorType)
	book, _ := New(bookType)

	is.True(errors.Is(author.SetOne("books", book), jsonapierrors.ErrUnknownRelationship))
	is.True(errors.Is(author.SetMany("genre", book), jsonapierrors.ErrUnknownRelationship))
	is.True(errors.Is(author.Append("pets", book), jsonapierrors.ErrUnknownRelationship))

	is.NoErr(author.Append("books", book))
	is.Equal(author.Many("books")[0], book)
}

func TestChangesOfUnpersistedEntity(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType, A("firstName", "foo"), A("lastName", nil))

	is.Equal(e.Changes(), map[string]Change{"firstName": {From: nil, To: "foo"}})
}

func TestChangesOfPersistedEntity(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType, A("firstName", "foo"))

	e.SetPersisted(true)
	is.Equal(len(e.Changes()), 0)

	is.NoErr(e.Set("firstName", "bar"))
	is.Equal(e.Changes(), map[string]Change{"firstName": {From: "foo", To: "bar"}})

	e.SetPersisted(true)
	is.Equal(len(e.Changes()), 0) // marking persisted again settles the changes
}

func TestPersistedDecoratorSnapshotsAfterAllAttributes(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType, Persisted(), A("firstName", "foo"))

	is.True(e.IsPersisted())
	is.Equal(len(e.Changes()), 0)
	is.True(!e.IsDirty())
}

func TestRollbackRestoresSnapshot(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType, A("firstName", "foo"), Persisted())

	_ = e.Set("firstName", "bar")
	_ = e.Set("lastName", "baz")
	e.Rollback()

	is.Equal(e.Attributes(), map[string]any{"firstName": "foo"})
	is.True(!e.IsDirty())
}

func TestIsDirtyWithoutPaths(t *testing.T) {
	is := is.New(t)

	e, _ := New(authorType)
	is.True(e.IsDirty()) // never persisted

	e.SetPersisted(true)
	is.True(!e.IsDirty())

	e.MarkForDestruction()
	is.True(e.IsDirty())

	e.ClearMarks()
	e.MarkForDisassociation()
	is.True(e.IsDirty())

	e.ClearMarks()
	is.True(!e.IsDirty())
}

func TestIsDirtyIgnoresRelationshipsWithoutPaths(t *testing.T) {
	is := is.New(t)
	book, _ := New(bookType, A("title", "It"), Persisted())
	author, _ := New(authorType, Many("books", book), Persisted())

	_ = book.Set("title", "Carrie")

	is.True(!author.IsDirty())
}

func TestScopedDirtyTraversal(t *testing.T) {
	is := is.New(t)
	book, _ := New(bookType, A("title", "It"), Persisted())
	author, _ := New(authorType, Many("books", book), Persisted())

	is.True(!author.IsDirty("genre"))
	is.True(!author.IsDirty("books"))

	_ = book.Set("title", "Carrie")

	is.True(author.IsDirty("books"))
	is.True(!author.IsDirty("genre")) // unrelated relationships are never inspected
}

func TestNestedDirtyTraversal(t *testing.T) {
	is := is.New(t)
	genre, _ := New(genreType, A("name", "Horror"), Persisted())
	book, _ := New(bookType, A("title", "It"), One("genre", genre), Persisted())
	author, _ := New(authorType, Many("books", book), Persisted())

	_ = genre.Set("name", "Thriller")

	is.True(!author.IsDirty("books"))
	is.True(author.IsDirty("books.genre"))
	is.True(author.IsDirtyWithin(include.Directive{"books": include.Directive{"genre": include.Directive{}}}))
}

func TestUnpersistedMemberMakesRelationshipDirty(t *testing.T) {
	is := is.New(t)
	book, _ := New(bookType, A("title", "Misery"))
	author, _ := New(authorType, Persisted())

	is.NoErr(author.Append("books", book))

	is.True(!author.IsDirty())
	is.True(author.IsDirty("books"))
}

func TestMarkedToOneTargetMakesRelationshipDirty(t *testing.T) {
	is := is.New(t)
	genre, _ := New(genreType, Persisted())
	author, _ := New(authorType, One("genre", genre), Persisted())

	genre.MarkForDisassociation()

	is.True(author.IsDirty("genre"))
}

func TestDirtyTraversalTerminatesOnCycles(t *testing.T) {
	is := is.New(t)
	author, _ := New(authorType, Persisted())
	book, _ := New(bookType, One("author", author), Persisted())
	_ = author.Append("books", book)

	is.True(!author.IsDirty("books.author.books.author"))
}

func TestExtensionsAreKeptApartFromAttributes(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType, Extension("selected", true))

	v, ok := e.Extension("selected")
	is.True(ok)
	is.Equal(v, true)

	_, ok = e.Get("selected")
	is.True(!ok)

	e.DeleteExtension("selected")
	_, ok = e.Extension("selected")
	is.True(!ok)
}

func TestTemporaryIDIsStable(t *testing.T) {
	is := is.New(t)
	e, _ := New(authorType)
	other, _ := New(authorType)

	is.True(e.TemporaryID() != "")
	is.Equal(e.TemporaryID(), e.TemporaryID())
	is.True(e.TemporaryID() != other.TemporaryID())
}

var authorType = &schema.TypeDescriptor{
	Name: "authors",
	Attributes: []schema.Attribute{
		{Name: "firstName", Type: schema.String},
		{Name: "lastName", Type: schema.String},
	},
	Relationships: []schema.Relationship{
		{Name: "books", Type: "books", ToMany: true},
		{Name: "genre", Type: "genres"},
	},
}

var bookType = &schema.TypeDescriptor{
	Name: "books",
	Attributes: []schema.Attribute{
		{Name: "title", Type: schema.String},
	},
	Relationships: []schema.Relationship{
		{Name: "author", Type: "authors"},
		{Name: "genre", Type: "genres"},
	},
}

var genreType = &schema.TypeDescriptor{
	Name: "genres",
	Attributes: []schema.Attribute{
		{Name: "name", Type: schema.String},
	},
}
