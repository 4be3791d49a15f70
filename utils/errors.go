package utils

import (
	"github.com/pkg/errors"
)

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError[ExpectedT any](actual interface{}) error {
	var expected ExpectedT
	return errors.Errorf("expected %T but got %T", expected, actual)
}

// NewAttributeTypeError is used when an attribute holds a value of the wrong type.
func NewAttributeTypeError[ExpectedT any](name string, actual interface{}) error {
	return errors.Wrapf(NewUnexpectedTypeError[ExpectedT](actual), "attribute %q", name)
}
