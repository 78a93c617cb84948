package ode

import "fmt"

// Coupling selects how coupled variables see each other within a step.
type Coupling int

const (
	// Staggered advances the variables one after another; each one uses the
	// finalized step values of the variables before it and the step-start
	// values of the variables after it.
	Staggered Coupling = iota
	// Simultaneous is the standard vector Runge-Kutta step.
	Simultaneous
)

func (c Coupling) String() string {
	switch c {
	case Staggered:
		return "staggered"
	case Simultaneous:
		return "simultaneous"
	}
	return fmt.Sprintf("Coupling(%d)", int(c))
}

// ParseCoupling resolves "staggered" or "simultaneous". The empty string
// yields Staggered.
func ParseCoupling(name string) (Coupling, error) {
	switch name {
	case "", "staggered":
		return Staggered, nil
	case "simultaneous", "symmetric":
		return Simultaneous, nil
	}
	return 0, fmt.Errorf("ode: unknown coupling %q", name)
}

func (c Coupling) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Coupling) UnmarshalText(text []byte) error {
	parsed, err := ParseCoupling(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Option configures a coupled solver.
type Option func(*options)

type options struct {
	coupling Coupling
}

// WithCoupling selects the coupling order of a coupled solver.
func WithCoupling(c Coupling) Option {
	return func(o *options) { o.coupling = c }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
