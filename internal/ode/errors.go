package ode

import (
	"errors"
	"fmt"
)

// Configuration errors returned by Solve. Each of them also matches
// ErrInvalidConfig under errors.Is.
var (
	// ErrInvalidConfig is matched by every validation failure.
	ErrInvalidConfig = errors.New("ode: invalid configuration")

	// ErrStepSize indicates a step size that is not a positive finite number.
	ErrStepSize = errors.New("ode: step size must be positive and finite")

	// ErrStepCount indicates a negative step count.
	ErrStepCount = errors.New("ode: step count must not be negative")

	// ErrGridLength indicates a time grid whose length is not nSteps+1.
	ErrGridLength = errors.New("ode: time grid length must be nSteps+1")

	// ErrGridSpacing indicates t[1]-t[0] disagrees with the step size.
	ErrGridSpacing = errors.New("ode: time grid spacing does not match step size")

	// ErrUnknownMethod indicates a Method value outside the enumeration.
	ErrUnknownMethod = errors.New("ode: unknown method")

	// ErrDimension indicates mismatched function and initial value counts.
	ErrDimension = errors.New("ode: dimension mismatch between functions and initial values")

	// ErrNilFunc indicates a missing right-hand-side function.
	ErrNilFunc = errors.New("ode: nil right-hand-side function")
)

// ConfigError reports which argument of a Solve call was rejected.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

// Is makes every ConfigError match ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
