package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("physics: invalid configuration")

// ConfigurationError reports a value rejected at a construction or call boundary.
type ConfigurationError struct {
	Field  string
	Value  float32
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("physics: %s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func requireFinite(field string, v float32) error {
	if !isFinite(v) {
		return &ConfigurationError{Field: field, Value: v, Reason: "must be finite"}
	}
	return nil
}

func requirePositive(field string, v float32) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ConfigurationError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}

// ValidateDelta rejects a frame time that is not a finite positive number of seconds.
func ValidateDelta(dt float32) error {
	return requirePositive("delta_time", dt)
}
