package errors

import (
	"fmt"
)

var ErrUnknownType = fmt.Errorf("unknown type")
var ErrMalformedDocument = fmt.Errorf("malformed document")
var ErrUnknownAttribute = fmt.Errorf("unknown attribute")
var ErrUnknownRelationship = fmt.Errorf("unknown relationship")
var ErrInvalidInclude = fmt.Errorf("invalid include directive")
var ErrAlreadyRegistered = fmt.Errorf("already registered")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// UnknownTypeError is recoverable. The parser drops the offending stub and carries on.
func NewUnknownTypeError(typeName string) error {
	return &myError{
		msg:    fmt.Sprintf("no type registered with name %q", typeName),
		target: ErrUnknownType,
	}
}

// MalformedDocumentError is fatal to the parse call that produced it.
func NewMalformedDocumentError(msg string) error {
	return &myError{
		msg:    "malformed document: " + msg,
		target: ErrMalformedDocument,
	}
}

func NewUnknownAttributeError(typeName, attributeName string) error {
	return &myError{
		msg:    fmt.Sprintf("type %s has no attribute named %q", typeName, attributeName),
		target: ErrUnknownAttribute,
	}
}

func NewUnknownRelationshipError(typeName, relationshipName string) error {
	return &myError{
		msg:    fmt.Sprintf("type %s has no relationship named %q", typeName, relationshipName),
		target: ErrUnknownRelationship,
	}
}

func NewInvalidIncludeError(msg string) error {
	return &myError{
		msg:    "invalid include directive: " + msg,
		target: ErrInvalidInclude,
	}
}

func NewAlreadyRegisteredError(typeName string) error {
	return &myError{
		msg:    fmt.Sprintf("type %s is already registered", typeName),
		target: ErrAlreadyRegistered,
	}
}
