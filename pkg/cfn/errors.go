package cfn

import (
	"errors"
	"fmt"
	"strings"
)

// RequiredPropertyError reports a required property that was not set.
type RequiredPropertyError struct {
	// Type is the CloudFormation type of the value holding the property,
	// e.g. AWS::KinesisAnalytics::Application.RecordFormat.
	Type string
	// Property is the wire name of the missing property.
	Property string
	// Path locates the property from the root value, e.g.
	// Inputs[0].InputSchema.RecordFormat.RecordFormatType.
	Path string
}

func (e *RequiredPropertyError) Error() string {
	return fmt.Sprintf("%s: required property %q is missing (at %s)", e.Type, e.Property, e.Path)
}

// ValidationErrors aggregates every problem found while validating a value.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	return e
}

// ReferenceError reports an intrinsic or attribute that points at something
// the template does not define.
type ReferenceError struct {
	// From is the logical id (or section.id) holding the reference.
	From string
	// Target is the referenced logical id, condition or attribute.
	Target string
	// Kind is Ref, Fn::GetAtt, Fn::Sub, DependsOn or Condition.
	Kind string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s references undefined %q", e.From, e.Kind, e.Target)
}

// CycleError reports a circular dependency between resources.
type CycleError struct {
	From string
	To   string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency between %q and %q", e.From, e.To)
}

// UnknownPropertyError reports properties in a document that the binding does
// not model.
type UnknownPropertyError struct {
	Type       string
	Properties []string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: unknown properties %s", e.Type, strings.Join(e.Properties, ", "))
}

// ErrDuplicateID is returned when a logical id is already used in a stack.
var ErrDuplicateID = errors.New("logical id already in use")

// ErrInvalidID is returned for logical ids that are not 1-255 alphanumeric characters.
var ErrInvalidID = errors.New("logical id must be 1-255 alphanumeric characters")

// ErrUndecodable is returned by Decode when a document does not fit the
// binding's field types, e.g. an intrinsic object in a numeric field.
var ErrUndecodable = errors.New("cannot decode properties")
