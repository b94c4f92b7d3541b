package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestUnknownTypeErrorMatchesSentinel(t *testing.T) {
	is := is.New(t)
	err := NewUnknownTypeError("unicorns")

	is.True(errors.Is(err, ErrUnknownType))
	is.True(!errors.Is(err, ErrMalformedDocument))
	is.Equal(err.Error(), `no type registered with name "unicorns"`)
}

func TestWrappedMalformedDocumentErrorMatchesSentinel(t *testing.T) {
	is := is.New(t)
	err := fmt.Errorf("parse failed: %w", NewMalformedDocumentError("data must be an object or an array"))

	is.True(errors.Is(err, ErrMalformedDocument))
	is.Equal(err.Error(), "parse failed: malformed document: data must be an object or an array")
}

func TestUnknownAttributeAndRelationshipErrorsAreDistinct(t *testing.T) {
	is := is.New(t)

	attrErr := NewUnknownAttributeError("authors", "shoeSize")
	relErr := NewUnknownRelationshipError("authors", "pets")

	is.True(errors.Is(attrErr, ErrUnknownAttribute))
	is.True(!errors.Is(attrErr, ErrUnknownRelationship))
	is.True(errors.Is(relErr, ErrUnknownRelationship))
}
