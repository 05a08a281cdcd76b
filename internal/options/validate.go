// Package options holds validation helpers shared by the functional-option
// APIs of the refract, pipeline, and render packages.
package options

import (
	"errors"

	"github.com/erraggy/schemaview/schemaerrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// Each bool in sources reports whether one candidate source is set.
// noSourceMsg and multiSourceMsg become the error text for zero and multiple
// sources respectively.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return errors.New(noSourceMsg)
	}
	if sourceCount > 1 {
		return errors.New(multiSourceMsg)
	}

	return nil
}

// ValidatePositive rejects values below one for the named option.
func ValidatePositive(option string, value int) error {
	if value < 1 {
		return &schemaerrors.ConfigError{
			Option:  option,
			Value:   value,
			Message: "must be at least 1",
		}
	}
	return nil
}
