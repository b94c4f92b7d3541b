package library

import (
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/schema"
)

var Author = &schema.TypeDescriptor{
	Name: AuthorTypeName,
	Attributes: []schema.Attribute{
		{Name: "firstName", Type: schema.String},
		{Name: "lastName", Type: schema.String},
		{Name: "born", Type: schema.Time},
		{Name: "rating", Type: schema.Number},
	},
	Relationships: []schema.Relationship{
		{Name: "books", Type: BookTypeName, ToMany: true},
		{Name: "genre", Type: GenreTypeName},
		{Name: "bio", Type: BioTypeName},
		{Name: "tags", Type: TagTypeName, ToMany: true},
	},
}

var Book = &schema.TypeDescriptor{
	Name: BookTypeName,
	Attributes: []schema.Attribute{
		{Name: "title", Type: schema.String},
		{Name: "pages", Type: schema.Integer},
		{Name: "published", Type: schema.Time},
	},
	Relationships: []schema.Relationship{
		{Name: "author", Type: AuthorTypeName},
		{Name: "genre", Type: GenreTypeName},
		{Name: "tags", Type: TagTypeName, ToMany: true},
	},
}

var Genre = &schema.TypeDescriptor{
	Name: GenreTypeName,
	Attributes: []schema.Attribute{
		{Name: "name", Type: schema.String},
	},
	Relationships: []schema.Relationship{
		{Name: "books", Type: BookTypeName, ToMany: true},
	},
}

var Bio = &schema.TypeDescriptor{
	Name: BioTypeName,
	Attributes: []schema.Attribute{
		{Name: "description", Type: schema.String},
	},
}

var Tag = &schema.TypeDescriptor{
	Name: TagTypeName,
	Attributes: []schema.Attribute{
		{Name: "name", Type: schema.String},
	},
}

// Registry returns a new registry holding every type of the library datamodel
func Registry() *schema.Registry {
	r, _ := schema.NewRegistry(Author, Book, Genre, Bio, Tag)
	return r
}

func NewAuthor(decorators ...entities.EntityDecoratorFunc) (*entities.Entity, error) {
	return entities.New(Author, decorators...)
}

func NewBook(decorators ...entities.EntityDecoratorFunc) (*entities.Entity, error) {
	return entities.New(Book, decorators...)
}

func NewGenre(decorators ...entities.EntityDecoratorFunc) (*entities.Entity, error) {
	return entities.New(Genre, decorators...)
}

func NewBio(decorators ...entities.EntityDecoratorFunc) (*entities.Entity, error) {
	return entities.New(Bio, decorators...)
}

func NewTag(decorators ...entities.EntityDecoratorFunc) (*entities.Entity, error) {
	return entities.New(Tag, decorators...)
}
