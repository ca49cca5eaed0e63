package querytrail

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSelected is returned when arguments are read for a field the
	// query did not select.
	ErrNotSelected = errors.New("querytrail: field not selected")
	// ErrMissingArgument is returned when a required argument without a
	// default is absent from the selection.
	ErrMissingArgument = errors.New("querytrail: missing argument")
	// ErrUnknownField is returned by generated binding code for a field name
	// the schema does not declare on the type.
	ErrUnknownField = errors.New("querytrail: unknown field")
	// ErrUnknownType is returned for an object or abstract type name the
	// schema does not declare.
	ErrUnknownType = errors.New("querytrail: unknown type")
	// ErrImpossibleType is returned when a value resolves to an object type
	// outside the possible types of its interface or union.
	ErrImpossibleType = errors.New("querytrail: impossible type")
)

// ConversionError reports a Value whose tag does not match the requested Go
// type.
type ConversionError struct {
	Expected string
	Actual   Kind
	Detail   string
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("querytrail: expected %s, got %s", e.Expected, e.Actual)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func mismatch(expected string, v Value) error {
	return &ConversionError{Expected: expected, Actual: v.Kind()}
}

// ParseError reports a string value that is not in the format of its scalar.
type ParseError struct {
	Scalar string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Layout != "" {
		return fmt.Sprintf("querytrail: parsing %s (format %s): %v", e.Scalar, e.Layout, e.Err)
	}
	return fmt.Sprintf("querytrail: parsing %s: %v", e.Scalar, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ArgumentError attributes a failure to one argument of one field.
type ArgumentError struct {
	Field    string
	Argument string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q of field %q: %v", e.Argument, e.Field, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// SourceError reports a parent value that does not implement the resolver
// interface of its object type.
type SourceError struct {
	TypeName string
	Source   any
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("querytrail: source of type %T does not resolve %s", e.Source, e.TypeName)
}

// UnknownField builds the error generated binding code returns for a field
// outside the schema.
func UnknownField(typeName, field string) error {
	return fmt.Errorf("%w %s.%s", ErrUnknownField, typeName, field)
}

func UnknownType(typeName string) error {
	return fmt.Errorf("%w %s", ErrUnknownType, typeName)
}

func ImpossibleType(abstractType, objectType string) error {
	return fmt.Errorf("%w %s for %s", ErrImpossibleType, objectType, abstractType)
}
