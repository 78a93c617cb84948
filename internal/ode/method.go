package ode

import (
	"fmt"
	"strings"
)

// Method identifies one of the explicit Runge-Kutta schemes.
type Method int

const (
	ForwardEuler Method = iota
	ExplicitMidpoint
	Heun2
	Ralston2
	Kutta3
	Wray3
	Ralston3
	SSPRK3
	Classic4
	ThreeEighths

	numMethods
)

var methodAliases = map[string]Method{
	"forward_euler":     ForwardEuler,
	"explicit_midpoint": ExplicitMidpoint,
	"heun":              Heun2,
	"ralston":           Ralston2,
	"kutta":             Kutta3,
	"wray":              Wray3,
	"classic4":          Classic4,
	"three_eighths":     ThreeEighths,
	"3/8":               ThreeEighths,
}

// Methods returns every supported method in enumeration order.
func Methods() []Method {
	ms := make([]Method, numMethods)
	for i := range ms {
		ms[i] = Method(i)
	}
	return ms
}

// ParseMethod resolves a method by its short name (as printed by String)
// or one of its aliases. Matching ignores case and surrounding spaces.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Methods() {
		if tableaus[m].Name == key {
			return m, nil
		}
	}
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func (m Method) valid() bool { return m >= 0 && m < numMethods }

func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return tableaus[m].Name
}

// Order is the classical order of accuracy of the method.
func (m Method) Order() int {
	if !m.valid() {
		return 0
	}
	return tableaus[m].Order
}

// Stages is the number of derivative evaluations per step.
func (m Method) Stages() int {
	if !m.valid() {
		return 0
	}
	return tableaus[m].Stages
}

// Tableau returns a copy of the Butcher tableau of m.
func (m Method) Tableau() (Tableau, error) {
	tb, err := m.tableau()
	if err != nil {
		return Tableau{}, err
	}
	return *tb, nil
}

func (m Method) tableau() (*Tableau, error) {
	if !m.valid() {
		return nil, &ConfigError{Field: "method", Value: float64(m), Wrapped: ErrUnknownMethod}
	}
	return &tableaus[m], nil
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
