package schema

import (
	"testing"

	"github.com/matryer/is"
)

func TestCamelCase(t *testing.T) {
	is := is.New(t)

	is.Equal(CamelCase("first_name"), "firstName")
	is.Equal(CamelCase("date-of-birth"), "dateOfBirth")
	is.Equal(CamelCase("title"), "title")
	is.Equal(CamelCase("alreadyCamel"), "alreadyCamel")
	is.Equal(CamelCase("_private"), "_private")
	is.Equal(CamelCase("__meta_key"), "__metaKey")
	is.Equal(CamelCase("_"), "_")
}

func TestToSnakeAndKebab(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSnake("firstName"), "first_name")
	is.Equal(ToKebab("dateOfBirth"), "date-of-birth")
	is.Equal(ToSnake("isbnCode10"), "isbn_code_10")
	is.Equal(ToSnake("HTMLBody"), "html_body")
	is.Equal(Verbatim("first_name"), "first_name")
}

func TestCamelCaseInvertsKebab(t *testing.T) {
	is := is.New(t)

	is.Equal(CamelCase(ToKebab("favoriteBooks")), "favoriteBooks")
	is.Equal(CamelCase(ToSnake("dateOfBirth")), "dateOfBirth")
}
